package datetime

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBounded(t *testing.T, from, to SingleDateTime) Bounded {
	t.Helper()
	b, err := NewBounded(from, to)
	require.NoError(t, err)
	return b
}

func TestBoundedRejectsReversedBounds(t *testing.T) {
	_, err := NewBounded(MustNew(2020, 5), MustNew(2020, 3))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidIntervalBounds))
	assert.Equal(t, ErrInvalidIntervalBounds, errors.Cause(err))
}

func TestBoundedAcceptsTies(t *testing.T) {
	b, err := NewBounded(MustNew(2020, 3, 20), MustNew(2020, 3))
	require.NoError(t, err)
	assert.LessOrEqual(t, b.From().CompareTo(b.To()), 0)
}

func TestContainsBoundValues(t *testing.T) {
	from, to := MustNew(2020, 1, 10), MustNew(2020, 2, 3)
	b := mustBounded(t, from, to)
	assert.True(t, b.Contains(from))
	assert.True(t, b.Contains(to))
	assert.True(t, b.Contains(MustNew(2020, 1)))
	assert.False(t, b.Contains(MustNew(2020, 1, 9)))
	assert.False(t, b.Contains(MustNew(2020, 3)))
}

func TestLowerLimitedContains(t *testing.T) {
	since := NewLowerLimited(MustNew(2019))
	assert.True(t, since.Contains(MustNew(2020, 1)))
	assert.True(t, since.Contains(MustNew(2019, 6)))
	assert.False(t, since.Contains(MustNew(2018, 12, 31)))
}

func TestUpperLimitedContains(t *testing.T) {
	until := NewUpperLimited(MustNew(2020, 3))
	assert.True(t, until.Contains(MustNew(1900)))
	assert.True(t, until.Contains(MustNew(2020, 3, 31, 23)))
	assert.False(t, until.Contains(MustNew(2020, 4, 1)))
}

func TestUnboundedContainsEverything(t *testing.T) {
	u := NewUnbounded()
	for _, p := range []SingleDateTime{MustNew(-9999), MustNew(1), MustNew(2020, 2, 29, 12, 0, 0), MustNew(9999, 12)} {
		assert.True(t, u.Contains(p))
	}
}

func TestPrecedes(t *testing.T) {
	until := NewUpperLimited(MustNew(2020, 3))
	since := NewLowerLimited(MustNew(2021))
	assert.True(t, until.Precedes(since))
	assert.False(t, since.Precedes(until))
	assert.True(t, Follows(since, until))

	// ties at shared precision never establish precedence
	assert.False(t, NewUpperLimited(MustNew(2020, 3)).Precedes(NewLowerLimited(MustNew(2020, 3, 5))))
	assert.False(t, NewUnbounded().Precedes(since))
	assert.False(t, until.Precedes(NewUnbounded()))
	assert.False(t, since.Precedes(until))
}

func allShapes(t *testing.T) []Interval {
	points := []SingleDateTime{MustNew(2019), MustNew(2020, 3), MustNew(2020, 3, 5), MustNew(2021, 7)}
	shapes := []Interval{NewUnbounded()}
	for i, p := range points {
		shapes = append(shapes, NewLowerLimited(p), NewUpperLimited(p))
		for _, q := range points[i:] {
			shapes = append(shapes, mustBounded(t, p, q))
		}
	}
	return shapes
}

func TestOverlapsSymmetric(t *testing.T) {
	shapes := allShapes(t)
	for _, a := range shapes {
		for _, b := range shapes {
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a), "%v / %v", a, b)
		}
	}
}

func TestOverlaps(t *testing.T) {
	until := NewUpperLimited(MustNew(2020, 3))
	since := NewLowerLimited(MustNew(2021))
	assert.False(t, until.Overlaps(since))
	assert.True(t, NewLowerLimited(MustNew(2020)).Overlaps(until))
	assert.True(t, NewUnbounded().Overlaps(since))
	assert.True(t, NewLowerLimited(MustNew(2030)).Overlaps(NewLowerLimited(MustNew(2000))))

	q1 := mustBounded(t, MustNew(2020, 1), MustNew(2020, 3))
	q2 := mustBounded(t, MustNew(2020, 4), MustNew(2020, 6))
	assert.False(t, q1.Overlaps(q2))
	assert.True(t, q1.Precedes(q2))
	assert.True(t, q1.Overlaps(mustBounded(t, MustNew(2020, 3, 31), MustNew(2020, 5))))
}

func TestNormalize(t *testing.T) {
	from, to := MustNew(2020), MustNew(2021)

	i, err := Normalize(&from, &to)
	require.NoError(t, err)
	assert.IsType(t, Bounded{}, i)

	i, err = Normalize(&from, nil)
	require.NoError(t, err)
	assert.IsType(t, LowerLimited{}, i)

	i, err = Normalize(nil, &to)
	require.NoError(t, err)
	assert.IsType(t, UpperLimited{}, i)

	i, err = Normalize(nil, nil)
	require.NoError(t, err)
	assert.IsType(t, Unbounded{}, i)

	_, err = Normalize(&to, &from)
	assert.True(t, errors.Is(err, ErrInvalidIntervalBounds))
}

func TestIntersect(t *testing.T) {
	since := NewLowerLimited(MustNew(2019))
	until := NewUpperLimited(MustNew(2020, 3))

	i, ok := Intersect(since, until)
	require.True(t, ok)
	assert.Equal(t, "[2019 .. 2020-03]", i.String())

	i, ok = Intersect(NewUnbounded(), NewUnbounded())
	require.True(t, ok)
	assert.IsType(t, Unbounded{}, i)

	// ties keep the finer endpoint
	i, ok = Intersect(NewLowerLimited(MustNew(2020, 3)), NewLowerLimited(MustNew(2020, 3, 5)))
	require.True(t, ok)
	lower, _ := i.Lower()
	assert.True(t, lower.Equal(MustNew(2020, 3, 5)))

	_, ok = Intersect(until, NewLowerLimited(MustNew(2021)))
	assert.False(t, ok)
}

func TestIntersectStaysInsideBoth(t *testing.T) {
	shapes := allShapes(t)
	for _, a := range shapes {
		for _, b := range shapes {
			i, ok := Intersect(a, b)
			if !ok {
				continue
			}
			if lower, has := i.Lower(); has {
				assert.True(t, a.Contains(lower) && b.Contains(lower), "%v in %v and %v", lower, a, b)
			}
			if upper, has := i.Upper(); has {
				assert.True(t, a.Contains(upper) && b.Contains(upper), "%v in %v and %v", upper, a, b)
			}
		}
	}
}

func TestIntervalStrings(t *testing.T) {
	assert.Equal(t, "[2019 .. +INF)", NewLowerLimited(MustNew(2019)).String())
	assert.Equal(t, "(-INF .. 2020-03]", NewUpperLimited(MustNew(2020, 3)).String())
	assert.Equal(t, "(-INF .. +INF)", NewUnbounded().String())
}
