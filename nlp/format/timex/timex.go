// Package timex reads temporal expressions emitted by the date parser:
// one expression per line, tab separated, as
//
//	<span tokens>	<relation form>	[<date> [<date>]]
//
// with dates in compact notation (2020, 2020-03, 2020-03-05T10:30:15).
package timex

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/KotlinNLP/LinguisticDescription-sub001/nlp/datetime"

	"github.com/pkg/errors"
)

const (
	FIELD_SEPARATOR = '\t'
	DATE_SEPARATOR  = "-"
	TIME_SEPARATOR  = ":"
	DATE_TIME_DELIM = "T"
	MIN_FIELDS      = 2
)

var ErrMalformedRecord = errors.New("malformed temporal expression record")

// ParseDate reads compact date notation into a partially specified value.
// Components are positional, so a missing component makes every finer one
// missing as well.
func ParseDate(value string) (datetime.SingleDateTime, error) {
	value = strings.TrimSpace(value)
	if value == "" || value == "_" {
		return datetime.New()
	}
	var (
		datePart, timePart = value, ""
		components         []string
	)
	if i := strings.Index(value, DATE_TIME_DELIM); i >= 0 {
		datePart, timePart = value[:i], value[i+1:]
		if timePart == "" {
			return datetime.SingleDateTime{}, errors.Wrapf(datetime.ErrInvalidDateTimeSpecification, "empty time in %q", value)
		}
	}
	components = strings.Split(datePart, DATE_SEPARATOR)
	if timePart != "" {
		if len(components) != 3 {
			return datetime.SingleDateTime{}, errors.Wrapf(datetime.ErrInvalidDateTimeSpecification, "time without full date in %q", value)
		}
		components = append(components, strings.Split(timePart, TIME_SEPARATOR)...)
	}
	values := make([]int, len(components))
	for i, component := range components {
		v, err := strconv.Atoi(component)
		if err != nil {
			return datetime.SingleDateTime{}, errors.Wrapf(datetime.ErrInvalidDateTimeSpecification, "%v %q in %q", datetime.Field(i), component, value)
		}
		values[i] = v
	}
	return datetime.New(values...)
}

// Record is one unresolved temporal expression read from the 1-based input
// Line. Err is set for rows that could not be parsed; such rows are reported
// and skipped by callers.
type Record struct {
	Line   int
	Tokens []string
	Form   string
	Points []datetime.SingleDateTime
	Err    error
}

func ParseRecord(fields []string) (*Record, error) {
	if len(fields) < MIN_FIELDS {
		return nil, errors.Wrapf(ErrMalformedRecord, "%d fields", len(fields))
	}
	tokens := strings.Fields(fields[0])
	if len(tokens) == 0 {
		return nil, errors.Wrap(ErrMalformedRecord, "empty span")
	}
	form := strings.TrimSpace(fields[1])
	if form == "" || form == "_" {
		return nil, errors.Wrap(ErrMalformedRecord, "empty relation form")
	}
	record := &Record{Tokens: tokens, Form: form, Points: make([]datetime.SingleDateTime, 0, len(fields)-MIN_FIELDS)}
	for _, field := range fields[MIN_FIELDS:] {
		if strings.TrimSpace(field) == "" {
			continue
		}
		point, err := ParseDate(field)
		if err != nil {
			return nil, err
		}
		record.Points = append(record.Points, point)
	}
	return record, nil
}

// Read returns one record per row. Only unreadable input fails the whole
// read; a malformed row yields a record carrying Err.
func Read(r io.Reader) ([]*Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = FIELD_SEPARATOR
	reader.FieldsPerRecord = -1
	reader.Comment = '#'
	reader.LazyQuotes = true

	var records []*Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		record, err := ParseRecord(row)
		if err != nil {
			record = &Record{Err: errors.Wrapf(err, "error processing line %d", line)}
		}
		record.Line = line
		records = append(records, record)
	}
	return records, nil
}

func ReadFile(filename string) ([]*Record, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}
