package conf

import (
	"bytes"
	"testing"

	"github.com/KotlinNLP/LinguisticDescription-sub001/nlp/morphology"
	"github.com/KotlinNLP/LinguisticDescription-sub001/nlp/temporal"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "verb", c.Categories["VB"])
	assert.Equal(t, "gen", c.Features.Gender)

	lexicon, err := c.Lexicon()
	require.NoError(t, err)
	assert.Equal(t, temporal.Until, lexicon["&D"])
	assert.Equal(t, temporal.Since, lexicon["MAZ"])

	b, err := c.Builder()
	require.NoError(t, err)
	m, err := b.Build("&D", "IN", nil)
	require.NoError(t, err)
	assert.Implements(t, (*morphology.Temporal)(nil), m)
}

func TestReadDefaultsFeatureKeys(t *testing.T) {
	c, err := Read([]byte("categories:\n  V: verb\n"))
	require.NoError(t, err)
	assert.Equal(t, FeatureKeys(morphology.DefaultFeatureKeys), c.Features)
	assert.Empty(t, c.Temporal)
}

func TestReadPartialFeatureKeys(t *testing.T) {
	c, err := Read([]byte("categories:\n  NN: noun\nfeatures:\n  tense: time\n"))
	require.NoError(t, err)
	assert.Equal(t, FeatureKeys{Tense: "time", Mood: "mood", Gender: "gen", Degree: "degree"}, c.Features)

	b, err := c.Builder()
	require.NoError(t, err)
	m, err := b.Build("BIT", "NN", map[string]string{"gen": "F"})
	require.NoError(t, err)
	assert.Equal(t, "gen=F", morphology.Features(m))
}

func TestReadRejectsUnknownNames(t *testing.T) {
	_, err := Read([]byte("categories:\n  V: gerund\n"))
	assert.True(t, errors.Is(err, morphology.ErrUnknownVariant))

	_, err = Read([]byte("temporal:\n  X: sometimes\n"))
	assert.True(t, errors.Is(err, temporal.ErrUnknownKind))

	_, err = Read([]byte("lexicon: {}\n"))
	assert.Error(t, err)
}

func TestWriteRead(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Write(&buf))
	c, err := ReadFrom(&buf)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}
