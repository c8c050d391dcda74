package morphology

import (
	"github.com/pkg/errors"
)

// Variant names a concrete morphology a POS tag maps to.
type Variant string

const (
	VERB        Variant = "verb"
	PARTICIPLE  Variant = "participle"
	NOUN        Variant = "noun"
	ADJECTIVE   Variant = "adjective"
	ADVERB      Variant = "adverb"
	PREPOSITION Variant = "preposition"
	PARTICLE    Variant = "particle"
)

var ErrUnknownVariant = errors.New("unknown morphology variant")

func ParseVariant(name string) (Variant, error) {
	switch v := Variant(name); v {
	case VERB, PARTICIPLE, NOUN, ADJECTIVE, ADVERB, PREPOSITION, PARTICLE:
		return v, nil
	}
	return "", errors.Wrapf(ErrUnknownVariant, "%q", name)
}

// FeatureKeys are the lattice feature names holding each property.
type FeatureKeys struct {
	Tense, Mood, Gender, Degree string
}

var DefaultFeatureKeys = FeatureKeys{
	Tense:  "tense",
	Mood:   "mood",
	Gender: "gen",
	Degree: "degree",
}

// Builder turns lattice morphemes into morphology records. Forms listed in
// Temporal are classified as temporal relation words.
type Builder struct {
	Categories map[string]Variant
	Keys       FeatureKeys
	Temporal   map[string]bool
}

func NewBuilder(categories map[string]Variant, keys FeatureKeys, temporalForms []string) *Builder {
	b := &Builder{
		Categories: categories,
		Keys:       keys,
		Temporal:   make(map[string]bool, len(temporalForms)),
	}
	for _, form := range temporalForms {
		b.Temporal[form] = true
	}
	return b
}

func (b *Builder) Variant(pos string) Variant {
	if v, exists := b.Categories[pos]; exists {
		return v
	}
	return PARTICLE
}

// Build classifies a morpheme given its form, POS tag and feature map.
func (b *Builder) Build(form, pos string, feats map[string]string) (Morphology, error) {
	variant := b.Variant(pos)
	if b.Temporal[form] {
		switch variant {
		case ADVERB:
			degree, err := ParseDegree(feats[b.Keys.Degree])
			if err != nil {
				return nil, err
			}
			return NewTemporalAdverb(pos, form, degree), nil
		default:
			return NewTemporalPreposition(pos, form), nil
		}
	}
	switch variant {
	case VERB:
		tense, err := ParseTense(feats[b.Keys.Tense])
		if err != nil {
			return nil, err
		}
		gender, err := ParseGender(feats[b.Keys.Gender])
		if err != nil {
			return nil, err
		}
		mood := MoodOf(tense)
		if value, exists := feats[b.Keys.Mood]; exists {
			if mood, err = ParseMood(value); err != nil {
				return nil, err
			}
		}
		if tense == Beinoni {
			return NewParticiple(pos, gender), nil
		}
		return NewVerb(pos, tense, mood, gender), nil
	case PARTICIPLE:
		gender, err := ParseGender(feats[b.Keys.Gender])
		if err != nil {
			return nil, err
		}
		return NewParticiple(pos, gender), nil
	case NOUN:
		gender, err := ParseGender(feats[b.Keys.Gender])
		if err != nil {
			return nil, err
		}
		return NewNoun(pos, gender), nil
	case ADJECTIVE:
		gender, err := ParseGender(feats[b.Keys.Gender])
		if err != nil {
			return nil, err
		}
		degree, err := ParseDegree(feats[b.Keys.Degree])
		if err != nil {
			return nil, err
		}
		return NewAdjective(pos, gender, degree), nil
	case ADVERB:
		degree, err := ParseDegree(feats[b.Keys.Degree])
		if err != nil {
			return nil, err
		}
		return NewAdverb(pos, degree), nil
	default:
		return NewParticle(pos), nil
	}
}
