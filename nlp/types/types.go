package types

import (
	"reflect"
	"strings"

	"github.com/KotlinNLP/LinguisticDescription-sub001/util"

	"github.com/pkg/errors"
)

type Token string

type TaggedToken struct {
	Token, POS string
}

type Sentence interface {
	util.Equaler
	Tokens() []string
}

type BasicSentence []Token

var _ Sentence = BasicSentence{}

func (b BasicSentence) Tokens() []string {
	retval := make([]string, len(b))
	for i, val := range b {
		retval[i] = string(val)
	}
	return retval
}

func (b BasicSentence) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(Sentence)
	if !ok {
		return false
	}
	return reflect.DeepEqual(b.Tokens(), other.Tokens())
}

type TaggedSentence interface {
	Sentence
	TaggedTokens() []TaggedToken
}

type BasicTaggedSentence []TaggedToken

var _ TaggedSentence = BasicTaggedSentence{}

func (b BasicTaggedSentence) Tokens() []string {
	tokens := make([]string, len(b))
	for i, token := range b {
		tokens[i] = token.Token
	}
	return tokens
}

func (b BasicTaggedSentence) TaggedTokens() []TaggedToken {
	return []TaggedToken(b)
}

func (b BasicTaggedSentence) Equal(otherEq util.Equaler) bool {
	asTagged, ok := otherEq.(BasicTaggedSentence)
	return ok && reflect.DeepEqual(b, asTagged)
}

var ErrSpanBounds = errors.New("span out of sentence bounds")

// Span is a contiguous multiword range [Start, End) of a sentence's tokens.
type Span struct {
	Tokens     []Token
	Start, End int
}

func NewSpan(sent Sentence, start, end int) (Span, error) {
	tokens := sent.Tokens()
	if start < 0 || end > len(tokens) || start >= end {
		return Span{}, errors.Wrapf(ErrSpanBounds, "[%d, %d) of %d tokens", start, end, len(tokens))
	}
	span := Span{make([]Token, end-start), start, end}
	for i, tok := range tokens[start:end] {
		span.Tokens[i] = Token(tok)
	}
	return span, nil
}

// SpanOf wraps free-standing tokens, e.g. a multiword expression read on
// its own line.
func SpanOf(tokens ...string) Span {
	span := Span{make([]Token, len(tokens)), 0, len(tokens)}
	for i, tok := range tokens {
		span.Tokens[i] = Token(tok)
	}
	return span
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	strs := make([]string, len(s.Tokens))
	for i, tok := range s.Tokens {
		strs[i] = string(tok)
	}
	return strings.Join(strs, " ")
}
