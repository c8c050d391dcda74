// Package temporal resolves temporal relation words and the dates they
// govern into the interval the expression denotes.
package temporal

import (
	"strings"

	"github.com/KotlinNLP/LinguisticDescription-sub001/nlp/datetime"
	"github.com/KotlinNLP/LinguisticDescription-sub001/nlp/morphology"
	nlp "github.com/KotlinNLP/LinguisticDescription-sub001/nlp/types"

	"github.com/pkg/errors"
)

var (
	ErrArity       = errors.New("wrong number of date points for temporal relation")
	ErrUnknownKind = errors.New("unknown temporal relation")
)

type Kind int

const (
	Since Kind = iota
	After
	Until
	By
	Before
	During
	Between
	Ever
)

var kindNames = []string{"since", "after", "until", "by", "before", "during", "between", "ever"}

func (k Kind) String() string {
	if k < Since || k > Ever {
		return "unknown"
	}
	return kindNames[k]
}

func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, kindName := range kindNames {
		if kindName == name {
			return Kind(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", name)
}

// Arity is the number of date points a relation governs.
func (k Kind) Arity() int {
	switch k {
	case Between:
		return 2
	case Ever:
		return 0
	default:
		return 1
	}
}

// Anchor builds the interval a relation denotes over its date points.
// "before" and "after" yield closed bounds since the core carries no notion
// of an excluded endpoint.
func Anchor(kind Kind, points ...datetime.SingleDateTime) (datetime.Interval, error) {
	if len(points) != kind.Arity() {
		return nil, errors.Wrapf(ErrArity, "%v takes %d, got %d", kind, kind.Arity(), len(points))
	}
	switch kind {
	case Since, After:
		return datetime.NewLowerLimited(points[0]), nil
	case Until, By, Before:
		return datetime.NewUpperLimited(points[0]), nil
	case During, Between:
		bounded, err := datetime.NewBounded(points[0], points[len(points)-1])
		if err != nil {
			return nil, err
		}
		return bounded, nil
	case Ever:
		return datetime.NewUnbounded(), nil
	}
	return nil, errors.Wrapf(ErrUnknownKind, "%d", int(kind))
}

// Expression is a multiword temporal expression: the span, the relation
// morphology heading it and the interval it denotes.
type Expression struct {
	Span       nlp.Span
	Morphology morphology.Temporal
	Kind       Kind
	Interval   datetime.Interval
}

func Resolve(span nlp.Span, morph morphology.Temporal, kind Kind, points ...datetime.SingleDateTime) (*Expression, error) {
	interval, err := Anchor(kind, points...)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving %q", span.String())
	}
	return &Expression{span, morph, kind, interval}, nil
}

func (e *Expression) String() string {
	return e.Span.String() + "\t" + e.Kind.String() + "\t" + e.Interval.String()
}
