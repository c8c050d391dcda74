package morphology

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownPropertyValue = errors.New("unknown morphological property value")

type Tense int

const (
	NoTense Tense = iota
	Past
	Present
	Future
	Beinoni
	ImperativeTense
	InfinitiveTense
)

var tenseNames = []string{"_", "PAST", "PRESENT", "FUTURE", "BEINONI", "IMPERATIVE", "TOINFINITIVE"}

type Mood int

const (
	NoMood Mood = iota
	Indicative
	Imperative
	Subjunctive
	Conditional
	Infinitive
)

var moodNames = []string{"_", "IND", "IMP", "SUB", "CND", "INF"}

type Gender int

const (
	NoGender Gender = iota
	Masculine
	Feminine
	Neuter
	MasculineFeminine
)

var genderNames = []string{"_", "M", "F", "N", "F,M"}

type Degree int

const (
	NoDegree Degree = iota
	Positive
	Comparative
	Superlative
)

var degreeNames = []string{"_", "POS", "CMP", "SUP"}

func (t Tense) String() string  { return propertyName(tenseNames, int(t)) }
func (m Mood) String() string   { return propertyName(moodNames, int(m)) }
func (g Gender) String() string { return propertyName(genderNames, int(g)) }
func (d Degree) String() string { return propertyName(degreeNames, int(d)) }

func propertyName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("?%d", i)
	}
	return names[i]
}

// feature values seen in treebank lattices that do not match the canonical
// names above
var (
	tenseAliases  = map[string]Tense{"PRES": Present, "FUT": Future, "IMP": ImperativeTense, "INF": InfinitiveTense}
	genderAliases = map[string]Gender{"MF": MasculineFeminine, "M,F": MasculineFeminine, "NEUT": Neuter}
)

func lookup(names []string, value string) (int, bool) {
	for i, name := range names {
		if name == value {
			return i, true
		}
	}
	return 0, false
}

func parseProperty(kind string, names []string, value string) (int, error) {
	value = strings.ToUpper(strings.TrimSpace(value))
	if value == "" {
		return 0, nil
	}
	if i, ok := lookup(names, value); ok {
		return i, nil
	}
	return 0, errors.Wrapf(ErrUnknownPropertyValue, "%s=%s", kind, value)
}

func ParseTense(value string) (Tense, error) {
	if t, ok := tenseAliases[strings.ToUpper(value)]; ok {
		return t, nil
	}
	i, err := parseProperty("tense", tenseNames, value)
	return Tense(i), err
}

func ParseMood(value string) (Mood, error) {
	i, err := parseProperty("mood", moodNames, value)
	return Mood(i), err
}

func ParseGender(value string) (Gender, error) {
	if g, ok := genderAliases[strings.ToUpper(value)]; ok {
		return g, nil
	}
	i, err := parseProperty("gen", genderNames, value)
	return Gender(i), err
}

func ParseDegree(value string) (Degree, error) {
	i, err := parseProperty("degree", degreeNames, value)
	return Degree(i), err
}

// MoodOf derives the mood a tense value implies when the lattice carries no
// explicit mood feature.
func MoodOf(t Tense) Mood {
	switch t {
	case NoTense:
		return NoMood
	case ImperativeTense:
		return Imperative
	case InfinitiveTense:
		return Infinitive
	default:
		return Indicative
	}
}
