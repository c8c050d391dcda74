// Package conllu reads CoNLL-U format files
// For a description see
// https://universaldependencies.github.io/docs/format.html
package conllu

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	FIELD_SEPARATOR      = "\t"
	NUM_FIELDS           = 10
	FEATURES_SEPARATOR   = "|"
	FEATURE_SEPARATOR    = "="
	FEATURE_CONCAT_DELIM = ","
)

var ErrMalformedRow = errors.New("malformed CoNLL-U row")

type Features map[string]string

func (f Features) String() string {
	if len(f) == 0 {
		return "_"
	}
	strs := make([]string, 0, len(f))
	for k, v := range f {
		strs = append(strs, k+FEATURE_SEPARATOR+v)
	}
	sort.Strings(strs)
	return strings.Join(strs, FEATURES_SEPARATOR)
}

// A Row is a single syntactic word of a CoNLL-U sentence
type Row struct {
	ID      int
	Form    string
	Lemma   string
	UPosTag string
	XPosTag string
	Feats   Features
	Head    int
	DepRel  string
	Misc    string
	TokenID int
}

func (r Row) String() string {
	fields := []string{
		strconv.Itoa(r.ID),
		r.Form,
		r.Lemma,
		r.UPosTag,
		r.XPosTag,
		r.Feats.String(),
		strconv.Itoa(r.Head),
		r.DepRel,
		"",
		r.Misc,
	}
	for i, field := range fields {
		if len(field) == 0 {
			fields[i] = "_"
		}
	}
	return strings.Join(fields, FIELD_SEPARATOR)
}

// A Sentence holds its syntactic words in order and the surface tokens they
// were segmented from; Row.TokenID indexes into Tokens
type Sentence struct {
	Rows     []Row
	Tokens   []string
	Comments []string
}

func NewSentence() *Sentence {
	return &Sentence{
		Rows:     make([]Row, 0, 10),
		Tokens:   []string{},
		Comments: make([]string, 0, 2),
	}
}

func ParseInt(value string) (int, error) {
	if value == "_" {
		return 0, nil
	}
	i, err := strconv.ParseInt(value, 10, 0)
	return int(i), err
}

func ParseString(value string) string {
	if value == "_" {
		return ""
	}
	return value
}

func ParseFeatures(featuresStr string) (Features, error) {
	if featuresStr == "_" || featuresStr == "" {
		return nil, nil
	}
	featureList := strings.Split(featuresStr, FEATURES_SEPARATOR)
	featureMap := make(Features, len(featureList))
	for _, featureStr := range featureList {
		featureKV := strings.Split(featureStr, FEATURE_SEPARATOR)
		if len(featureKV) != 2 {
			return nil, errors.Wrapf(ErrMalformedRow, "wrong number of fields for split of feature %s", featureStr)
		}
		if existing, exists := featureMap[featureKV[0]]; exists {
			featureMap[featureKV[0]] = existing + FEATURE_CONCAT_DELIM + featureKV[1]
		} else {
			featureMap[featureKV[0]] = featureKV[1]
		}
	}
	return featureMap, nil
}

func ParseRow(record []string) (Row, error) {
	var row Row
	if len(record) != NUM_FIELDS {
		return row, errors.Wrapf(ErrMalformedRow, "expected %d fields, got %d", NUM_FIELDS, len(record))
	}
	id, err := ParseInt(record[0])
	if err != nil {
		return row, errors.Wrapf(ErrMalformedRow, "ID field (%s): %v", record[0], err)
	}
	row.ID = id
	row.UPosTag = ParseString(record[3])
	row.XPosTag = ParseString(record[4])
	if row.UPosTag == "SYM" || row.UPosTag == "PUNCT" {
		// symbols are taken as is
		row.Form = record[1]
	} else {
		row.Form = ParseString(record[1])
	}
	row.Lemma = ParseString(record[2])
	if row.Feats, err = ParseFeatures(record[5]); err != nil {
		return row, errors.Wrapf(err, "FEATS field (%s)", record[5])
	}
	if row.Head, err = ParseInt(record[6]); err != nil {
		return row, errors.Wrapf(ErrMalformedRow, "HEAD field (%s): %v", record[6], err)
	}
	row.DepRel = ParseString(record[7])
	row.Misc = ParseString(record[9])
	return row, nil
}

// ParseTokenRow parses a multiword token range row, returning the token and
// the number of syntactic words it spans
func ParseTokenRow(record []string) (string, int, error) {
	if len(record) < 2 {
		return "", 0, errors.Wrap(ErrMalformedRow, "token row missing FORM field")
	}
	token := ParseString(record[1])
	if token == "" {
		return token, 0, errors.Wrap(ErrMalformedRow, "empty FORM field for token row")
	}
	ids := strings.Split(record[0], "-")
	if len(ids) != 2 {
		return token, 0, errors.Wrapf(ErrMalformedRow, "ID span (%s) needs <num>-<num>", record[0])
	}
	id1, err := ParseInt(ids[0])
	if err != nil {
		return token, 0, errors.Wrapf(ErrMalformedRow, "ID span (%s): %v", record[0], err)
	}
	id2, err := ParseInt(ids[1])
	if err != nil {
		return token, 0, errors.Wrapf(ErrMalformedRow, "ID span (%s): %v", record[0], err)
	}
	if id2 <= id1 {
		return token, 0, errors.Wrapf(ErrMalformedRow, "ID span (%s) must be increasing", record[0])
	}
	return token, id2 - id1 + 1, nil
}

// Read reads up to limit sentences (all when limit is 0). Empty node rows
// (decimal IDs) are skipped.
func Read(reader io.Reader, limit int) ([]*Sentence, error) {
	var (
		sentences         []*Sentence
		line              int
		numForms          int
		numSyntacticWords int
		numTokens         int
	)
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 16384), 1024*1024)
	currentSent := NewSentence()
	flush := func() bool {
		if len(currentSent.Rows) > 0 {
			sentences = append(sentences, currentSent)
		}
		currentSent = NewSentence()
		numForms = 0
		return limit > 0 && len(sentences) >= limit
	}
	for scanner.Scan() {
		line++
		curLine := scanner.Text()
		if len(strings.TrimSpace(curLine)) == 0 {
			if flush() {
				return sentences, nil
			}
			continue
		}
		if curLine[0] == '#' {
			currentSent.Comments = append(currentSent.Comments, curLine)
			continue
		}
		record := strings.Split(curLine, FIELD_SEPARATOR)
		switch {
		case strings.Contains(record[0], "."):
			continue
		case strings.Contains(record[0], "-"):
			token, forms, err := ParseTokenRow(record)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			currentSent.Tokens = append(currentSent.Tokens, token)
			numForms = forms
			numTokens++
		default:
			row, err := ParseRow(record)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			if numForms > 0 {
				numForms--
			} else {
				currentSent.Tokens = append(currentSent.Tokens, row.Form)
				numTokens++
			}
			row.TokenID = len(currentSent.Tokens) - 1
			currentSent.Rows = append(currentSent.Rows, row)
			numSyntacticWords++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed reading CoNLL-U input")
	}
	flush()
	log.Debug().Msgf("Read %d sentences with %d syntactic words of %d tokens", len(sentences), numSyntacticWords, numTokens)
	return sentences, nil
}

func ReadFile(filename string, limit int) ([]*Sentence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file, limit)
}
