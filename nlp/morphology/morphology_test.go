package morphology

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a relation family defined outside the catalog
type Spatial interface {
	Relation
	SpatialMarker()
}

type locative struct {
	RelationMark
}

func (locative) POS() string    { return "IN" }
func (locative) SpatialMarker() {}

var _ Spatial = locative{}

func TestCapabilitySubsets(t *testing.T) {
	cases := []struct {
		m    Morphology
		caps []string
	}{
		{NewVerb("VB", Past, Indicative, Masculine), []string{CAP_CONJUGABLE, CAP_GENDERABLE}},
		{NewParticiple("BN", Feminine), []string{CAP_CONJUGABLE, CAP_GENDERABLE}},
		{NewNoun("NN", Feminine), []string{CAP_GENDERABLE}},
		{NewAdjective("JJ", Masculine, Comparative), []string{CAP_GENDERABLE, CAP_GRADABLE}},
		{NewAdverb("RB", Superlative), []string{CAP_GRADABLE}},
		{NewTemporalPreposition("IN", "MAZ"), []string{CAP_RELATION, CAP_TEMPORAL}},
		{NewTemporalAdverb("RB", "MWQDM", Comparative), []string{CAP_GRADABLE, CAP_RELATION, CAP_TEMPORAL}},
		{NewParticle("CC"), []string{}},
		{locative{}, []string{CAP_RELATION}},
	}
	for _, c := range cases {
		assert.Equal(t, c.caps, Capabilities(c.m), "%v", c.m)
	}
}

func TestGenderableOnlyHasNoTense(t *testing.T) {
	var noun Genderable = NewNoun("NN", Masculine)
	assert.Equal(t, Masculine, noun.Gender())

	_, conjugable := Morphology(noun).(Conjugable)
	assert.False(t, conjugable)
}

func TestTemporalIsRelation(t *testing.T) {
	var temporal Temporal = NewTemporalPreposition("IN", "&D")
	var relation Relation = temporal
	assert.Equal(t, "IN", relation.POS())

	_, isTemporal := Morphology(locative{}).(Temporal)
	assert.False(t, isTemporal)
}

func TestParseProperties(t *testing.T) {
	tense, err := ParseTense("past")
	require.NoError(t, err)
	assert.Equal(t, Past, tense)

	tense, err = ParseTense("_")
	require.NoError(t, err)
	assert.Equal(t, NoTense, tense)

	gender, err := ParseGender("F,M")
	require.NoError(t, err)
	assert.Equal(t, MasculineFeminine, gender)

	gender, err = ParseGender("")
	require.NoError(t, err)
	assert.Equal(t, NoGender, gender)

	_, err = ParseDegree("MOST")
	assert.True(t, errors.Is(err, ErrUnknownPropertyValue))
	assert.Contains(t, err.Error(), "degree=MOST")
}

func TestFeatures(t *testing.T) {
	assert.Equal(t, "tense=PAST|mood=IND|gen=M", Features(NewVerb("VB", Past, Indicative, Masculine)))
	assert.Equal(t, "gen=F|degree=CMP", Features(NewAdjective("JJ", Feminine, Comparative)))
	assert.Equal(t, "_", Features(NewTemporalPreposition("IN", "MAZ")))
	assert.Equal(t, "NN[gen]{gen=F}", NewNoun("NN", Feminine).String())
}

func testBuilder() *Builder {
	return NewBuilder(map[string]Variant{
		"VB": VERB,
		"BN": PARTICIPLE,
		"NN": NOUN,
		"JJ": ADJECTIVE,
		"RB": ADVERB,
		"IN": PREPOSITION,
	}, DefaultFeatureKeys, []string{"MAZ", "&D", "MWQDM"})
}

func TestBuilder(t *testing.T) {
	b := testBuilder()

	m, err := b.Build("HLK", "VB", map[string]string{"gen": "M", "num": "S", "per": "3", "tense": "PAST"})
	require.NoError(t, err)
	verb, ok := m.(Conjugable)
	require.True(t, ok)
	assert.Equal(t, Past, verb.Tense())
	assert.Equal(t, Indicative, verb.Mood())

	m, err = b.Build("HWLK", "VB", map[string]string{"gen": "M", "tense": "BEINONI"})
	require.NoError(t, err)
	assert.IsType(t, Participle{}, m)

	m, err = b.Build("LK", "VB", map[string]string{"tense": "IMPERATIVE"})
	require.NoError(t, err)
	assert.Equal(t, Imperative, m.(Conjugable).Mood())

	m, err = b.Build("MAZ", "IN", nil)
	require.NoError(t, err)
	assert.Implements(t, (*Temporal)(nil), m)
	assert.Equal(t, "MAZ", m.(TemporalPreposition).Form())

	m, err = b.Build("MWQDM", "RB", map[string]string{"degree": "CMP"})
	require.NoError(t, err)
	assert.Equal(t, Comparative, m.(TemporalAdverb).Degree())

	m, err = b.Build("B", "IN", nil)
	require.NoError(t, err)
	assert.IsType(t, Particle{}, m)

	m, err = b.Build("W", "CONJ", nil)
	require.NoError(t, err)
	assert.Empty(t, Capabilities(m))

	_, err = b.Build("GDWL", "JJ", map[string]string{"gen": "X"})
	assert.True(t, errors.Is(err, ErrUnknownPropertyValue))
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("noun")
	require.NoError(t, err)
	assert.Equal(t, NOUN, v)

	_, err = ParseVariant("pronoun")
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}
