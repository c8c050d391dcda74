// Package datetime represents partially specified calendar instants and the
// temporal spans multiword date expressions denote.
package datetime

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Field int

const (
	Year Field = iota
	Month
	Day
	Hour
	Minute
	Second
)

const NUM_FIELDS = int(Second) + 1

var fieldNames = [NUM_FIELDS]string{"year", "month", "day", "hour", "minute", "second"}

// inclusive value ranges; day is further limited by the month when known
var fieldRanges = [NUM_FIELDS][2]int{
	{-9999, 9999},
	{1, 12},
	{1, 31},
	{0, 23},
	{0, 59},
	{0, 59},
}

func (f Field) String() string {
	if f < Year || f > Second {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Fields carries optional values as delivered by a date parser.
type Fields struct {
	Year, Month, Day, Hour, Minute, Second *int
}

func (f Fields) values() [NUM_FIELDS]*int {
	return [NUM_FIELDS]*int{f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second}
}

// SingleDateTime is one calendar instant specified down to some precision.
// The specified fields always form a prefix of year, month, day, hour,
// minute, second. The zero value is not valid; use New or FromFields.
type SingleDateTime struct {
	values [NUM_FIELDS]int
	n      int
}

// New builds a value from a positional prefix: year, then month, and so on.
func New(values ...int) (SingleDateTime, error) {
	var d SingleDateTime
	if len(values) == 0 {
		return d, errors.Wrap(ErrInvalidDateTimeSpecification, "no field specified")
	}
	if len(values) > NUM_FIELDS {
		return d, errors.Wrapf(ErrInvalidDateTimeSpecification, "%d fields given, at most %d allowed", len(values), NUM_FIELDS)
	}
	copy(d.values[:], values)
	d.n = len(values)
	if err := d.validate(); err != nil {
		return SingleDateTime{}, err
	}
	return d, nil
}

// MustNew is like New but panics on an invalid specification.
func MustNew(values ...int) SingleDateTime {
	d, err := New(values...)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// FromFields builds a value from optional fields, rejecting any field set
// without all of the coarser fields above it.
func FromFields(f Fields) (SingleDateTime, error) {
	var (
		d      SingleDateTime
		gapAt  Field = -1
		values       = f.values()
	)
	for i, v := range values {
		if v == nil {
			if gapAt < 0 {
				gapAt = Field(i)
			}
			continue
		}
		if gapAt >= 0 {
			return SingleDateTime{}, errors.Wrapf(ErrInvalidDateTimeSpecification, "%v specified without %v", Field(i), gapAt)
		}
		d.values[i] = *v
		d.n++
	}
	if d.n == 0 {
		return SingleDateTime{}, errors.Wrap(ErrInvalidDateTimeSpecification, "no field specified")
	}
	if err := d.validate(); err != nil {
		return SingleDateTime{}, err
	}
	return d, nil
}

func (d SingleDateTime) validate() error {
	for i := 0; i < d.n; i++ {
		r := fieldRanges[i]
		if d.values[i] < r[0] || d.values[i] > r[1] {
			return errors.Wrapf(ErrInvalidDateTimeSpecification, "%v %d out of range [%d, %d]", Field(i), d.values[i], r[0], r[1])
		}
	}
	if d.n > int(Day) {
		if last := daysIn(d.values[Year], d.values[Month]); d.values[Day] > last {
			return errors.Wrapf(ErrInvalidDateTimeSpecification, "day %d exceeds %d days of %04d-%02d", d.values[Day], last, d.values[Year], d.values[Month])
		}
	}
	return nil
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Precision is the finest specified field.
func (d SingleDateTime) Precision() Field {
	return Field(d.n - 1)
}

func (d SingleDateTime) SpecifiedFields() []Field {
	fields := make([]Field, d.n)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

func (d SingleDateTime) Has(f Field) bool {
	return f >= Year && int(f) < d.n
}

func (d SingleDateTime) Get(f Field) (int, bool) {
	if !d.Has(f) {
		return 0, false
	}
	return d.values[f], true
}

func (d SingleDateTime) Year() (int, bool)   { return d.Get(Year) }
func (d SingleDateTime) Month() (int, bool)  { return d.Get(Month) }
func (d SingleDateTime) Day() (int, bool)    { return d.Get(Day) }
func (d SingleDateTime) Hour() (int, bool)   { return d.Get(Hour) }
func (d SingleDateTime) Minute() (int, bool) { return d.Get(Minute) }
func (d SingleDateTime) Second() (int, bool) { return d.Get(Second) }

// CompareTo orders two values down to the coarser of their precisions.
// A result of 0 means equal at the shared precision, so "2020-03" and
// "2020-03-05" compare as equal rather than ordered.
func (d SingleDateTime) CompareTo(other SingleDateTime) int {
	shared := d.n
	if other.n < shared {
		shared = other.n
	}
	for i := 0; i < shared; i++ {
		switch {
		case d.values[i] < other.values[i]:
			return -1
		case d.values[i] > other.values[i]:
			return 1
		}
	}
	return 0
}

// Equal is identity: the same specified fields with the same values.
func (d SingleDateTime) Equal(other SingleDateTime) bool {
	return d.n == other.n && d.CompareTo(other) == 0
}

// Consistent reports whether both values may denote the same instant.
func (d SingleDateTime) Consistent(other SingleDateTime) bool {
	return d.CompareTo(other) == 0
}

func (d SingleDateTime) Before(other SingleDateTime) bool {
	return d.CompareTo(other) < 0
}

func (d SingleDateTime) After(other SingleDateTime) bool {
	return d.CompareTo(other) > 0
}

// Truncate drops every field finer than f.
func (d SingleDateTime) Truncate(f Field) SingleDateTime {
	if int(f) >= d.n-1 || f < Year {
		return d
	}
	trunc := SingleDateTime{n: int(f) + 1}
	copy(trunc.values[:trunc.n], d.values[:trunc.n])
	return trunc
}

func (d SingleDateTime) String() string {
	if d.n == 0 {
		return "_"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%04d", d.values[Year])
	for i := 1; i < d.n; i++ {
		switch Field(i) {
		case Month, Day:
			b.WriteByte('-')
		case Hour:
			b.WriteByte('T')
		default:
			b.WriteByte(':')
		}
		fmt.Fprintf(&b, "%02d", d.values[i])
	}
	return b.String()
}
