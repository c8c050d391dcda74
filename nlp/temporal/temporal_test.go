package temporal

import (
	"testing"

	"github.com/KotlinNLP/LinguisticDescription-sub001/nlp/datetime"
	"github.com/KotlinNLP/LinguisticDescription-sub001/nlp/morphology"
	nlp "github.com/KotlinNLP/LinguisticDescription-sub001/nlp/types"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for i, name := range kindNames {
		kind, err := ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, Kind(i), kind)
	}
	kind, err := ParseKind(" Until ")
	require.NoError(t, err)
	assert.Equal(t, Until, kind)

	_, err = ParseKind("whenever")
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestAnchorShapes(t *testing.T) {
	march := datetime.MustNew(2020, 3)
	june := datetime.MustNew(2020, 6)

	cases := []struct {
		kind   Kind
		points []datetime.SingleDateTime
		shape  datetime.Interval
	}{
		{Since, []datetime.SingleDateTime{march}, datetime.LowerLimited{}},
		{After, []datetime.SingleDateTime{march}, datetime.LowerLimited{}},
		{Until, []datetime.SingleDateTime{march}, datetime.UpperLimited{}},
		{By, []datetime.SingleDateTime{march}, datetime.UpperLimited{}},
		{Before, []datetime.SingleDateTime{march}, datetime.UpperLimited{}},
		{During, []datetime.SingleDateTime{march}, datetime.Bounded{}},
		{Between, []datetime.SingleDateTime{march, june}, datetime.Bounded{}},
		{Ever, nil, datetime.Unbounded{}},
	}
	for _, c := range cases {
		interval, err := Anchor(c.kind, c.points...)
		require.NoError(t, err, c.kind.String())
		assert.IsType(t, c.shape, interval, c.kind.String())
	}
}

func TestAnchorDuringContainsFinerPoints(t *testing.T) {
	during, err := Anchor(During, datetime.MustNew(2020, 3))
	require.NoError(t, err)
	assert.True(t, during.Contains(datetime.MustNew(2020, 3, 17, 9)))
	assert.False(t, during.Contains(datetime.MustNew(2020, 4, 1)))
}

func TestAnchorErrors(t *testing.T) {
	_, err := Anchor(Between, datetime.MustNew(2020))
	assert.True(t, errors.Is(err, ErrArity))

	_, err = Anchor(Ever, datetime.MustNew(2020))
	assert.True(t, errors.Is(err, ErrArity))

	_, err = Anchor(Between, datetime.MustNew(2020, 5), datetime.MustNew(2020, 3))
	assert.True(t, errors.Is(err, datetime.ErrInvalidIntervalBounds))
}

func TestResolve(t *testing.T) {
	span := nlp.SpanOf("MAZ", "2019")
	morph := morphology.NewTemporalPreposition("IN", "MAZ")

	expr, err := Resolve(span, morph, Since, datetime.MustNew(2019))
	require.NoError(t, err)
	assert.True(t, expr.Interval.Contains(datetime.MustNew(2020, 1)))
	assert.Equal(t, "MAZ 2019\tsince\t[2019 .. +INF)", expr.String())

	until, err := Resolve(nlp.SpanOf("&D", "2020-03"), morphology.NewTemporalPreposition("IN", "&D"), Until, datetime.MustNew(2020, 3))
	require.NoError(t, err)
	assert.False(t, until.Interval.Precedes(expr.Interval))
	assert.True(t, until.Interval.Overlaps(expr.Interval))

	_, err = Resolve(span, morph, Between, datetime.MustNew(2019))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrArity))
	assert.Contains(t, err.Error(), `resolving "MAZ 2019"`)
}
