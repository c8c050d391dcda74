package morphology

import (
	"fmt"
	"strings"
)

const (
	FEATURES_SEPARATOR = "|"
	FEATURE_SEPARATOR  = "="
)

type Verb struct {
	pos    string
	tense  Tense
	mood   Mood
	gender Gender
}

func NewVerb(pos string, tense Tense, mood Mood, gender Gender) Verb {
	return Verb{pos, tense, mood, gender}
}

func (v Verb) POS() string    { return v.pos }
func (v Verb) Tense() Tense   { return v.tense }
func (v Verb) Mood() Mood     { return v.mood }
func (v Verb) Gender() Gender { return v.gender }
func (v Verb) String() string { return describe(v) }

// Participle is a verbal form in beinoni (present participle).
type Participle struct {
	pos    string
	gender Gender
}

func NewParticiple(pos string, gender Gender) Participle {
	return Participle{pos, gender}
}

func (p Participle) POS() string    { return p.pos }
func (p Participle) Tense() Tense   { return Beinoni }
func (p Participle) Mood() Mood     { return Indicative }
func (p Participle) Gender() Gender { return p.gender }
func (p Participle) String() string { return describe(p) }

type Noun struct {
	pos    string
	gender Gender
}

func NewNoun(pos string, gender Gender) Noun {
	return Noun{pos, gender}
}

func (n Noun) POS() string    { return n.pos }
func (n Noun) Gender() Gender { return n.gender }
func (n Noun) String() string { return describe(n) }

type Adjective struct {
	pos    string
	gender Gender
	degree Degree
}

func NewAdjective(pos string, gender Gender, degree Degree) Adjective {
	return Adjective{pos, gender, degree}
}

func (a Adjective) POS() string    { return a.pos }
func (a Adjective) Gender() Gender { return a.gender }
func (a Adjective) Degree() Degree { return a.degree }
func (a Adjective) String() string { return describe(a) }

type Adverb struct {
	pos    string
	degree Degree
}

func NewAdverb(pos string, degree Degree) Adverb {
	return Adverb{pos, degree}
}

func (a Adverb) POS() string    { return a.pos }
func (a Adverb) Degree() Degree { return a.degree }
func (a Adverb) String() string { return describe(a) }

// TemporalPreposition anchors or bounds an event in time ("since",
// "until", "during").
type TemporalPreposition struct {
	TemporalMark
	pos  string
	form string
}

func NewTemporalPreposition(pos, form string) TemporalPreposition {
	return TemporalPreposition{pos: pos, form: form}
}

func (t TemporalPreposition) POS() string    { return t.pos }
func (t TemporalPreposition) Form() string   { return t.form }
func (t TemporalPreposition) String() string { return describe(t) }

// TemporalAdverb is a gradable time relation word ("earlier", "later").
type TemporalAdverb struct {
	TemporalMark
	pos    string
	form   string
	degree Degree
}

func NewTemporalAdverb(pos, form string, degree Degree) TemporalAdverb {
	return TemporalAdverb{pos: pos, form: form, degree: degree}
}

func (t TemporalAdverb) POS() string    { return t.pos }
func (t TemporalAdverb) Form() string   { return t.form }
func (t TemporalAdverb) Degree() Degree { return t.degree }
func (t TemporalAdverb) String() string { return describe(t) }

// Particle carries no grammatical property.
type Particle struct {
	pos string
}

func NewParticle(pos string) Particle {
	return Particle{pos}
}

func (p Particle) POS() string    { return p.pos }
func (p Particle) String() string { return describe(p) }

var (
	_ Conjugable = Verb{}
	_ Genderable = Verb{}
	_ Conjugable = Participle{}
	_ Genderable = Participle{}
	_ Genderable = Noun{}
	_ Genderable = Adjective{}
	_ Gradable   = Adjective{}
	_ Gradable   = Adverb{}
	_ Temporal   = TemporalPreposition{}
	_ Temporal   = TemporalAdverb{}
	_ Gradable   = TemporalAdverb{}
	_ Morphology = Particle{}
)

// Features renders the properties m exposes in lattice feature notation,
// e.g. "tense=PAST|mood=IND|gen=M", or "_" when there are none.
func Features(m Morphology) string {
	feats := make([]string, 0, 4)
	add := func(name string, value fmt.Stringer) {
		feats = append(feats, name+FEATURE_SEPARATOR+value.String())
	}
	if c, ok := m.(Conjugable); ok {
		add("tense", c.Tense())
		add("mood", c.Mood())
	}
	if g, ok := m.(Genderable); ok {
		add("gen", g.Gender())
	}
	if g, ok := m.(Gradable); ok {
		add("degree", g.Degree())
	}
	if len(feats) == 0 {
		return "_"
	}
	return strings.Join(feats, FEATURES_SEPARATOR)
}

func describe(m Morphology) string {
	return fmt.Sprintf("%s[%s]{%s}", m.POS(), strings.Join(Capabilities(m), ","), Features(m))
}
