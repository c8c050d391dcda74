package datetime

// bounds flattens an interval's endpoints. A missing bound is treated as
// maximally permissive rather than as an absolute minimum or maximum instant.
type bounds struct {
	lower, upper       SingleDateTime
	hasLower, hasUpper bool
}

func boundsOf(i Interval) bounds {
	switch v := i.(type) {
	case Bounded:
		return bounds{v.from, v.to, true, true}
	case LowerLimited:
		return bounds{lower: v.from, hasLower: true}
	case UpperLimited:
		return bounds{upper: v.to, hasUpper: true}
	case Unbounded, nil:
		return bounds{}
	default:
		panic("unknown interval shape")
	}
}

// Contains reports whether point is neither before the lower bound nor
// after the upper bound of i.
func Contains(i Interval, point SingleDateTime) bool {
	b := boundsOf(i)
	if b.hasLower && point.Before(b.lower) {
		return false
	}
	if b.hasUpper && point.After(b.upper) {
		return false
	}
	return true
}

// Overlaps reports whether a and b share at least one point. It is
// symmetric.
func Overlaps(a, b Interval) bool {
	ba, bb := boundsOf(a), boundsOf(b)
	if ba.hasLower && bb.hasUpper && ba.lower.After(bb.upper) {
		return false
	}
	if bb.hasLower && ba.hasUpper && bb.lower.After(ba.upper) {
		return false
	}
	return true
}

// Precedes reports whether a ends strictly before b starts. Without an upper
// bound on a or a lower bound on b precedence cannot be established and the
// result is false.
func Precedes(a, b Interval) bool {
	ba, bb := boundsOf(a), boundsOf(b)
	if !ba.hasUpper || !bb.hasLower {
		return false
	}
	return ba.upper.Before(bb.lower)
}

func Follows(a, b Interval) bool {
	return Precedes(b, a)
}

// Normalize picks the interval shape matching the bounds present.
func Normalize(lower, upper *SingleDateTime) (Interval, error) {
	switch {
	case lower != nil && upper != nil:
		b, err := NewBounded(*lower, *upper)
		if err != nil {
			return nil, err
		}
		return b, nil
	case lower != nil:
		return NewLowerLimited(*lower), nil
	case upper != nil:
		return NewUpperLimited(*upper), nil
	default:
		return NewUnbounded(), nil
	}
}

// Intersect returns the span shared by a and b, keeping the later lower and
// the earlier upper bound. When two bounds are equal at their shared
// precision the finer one is kept. The second result is false when a and b
// do not overlap.
func Intersect(a, b Interval) (Interval, bool) {
	if !Overlaps(a, b) {
		return nil, false
	}
	ba, bb := boundsOf(a), boundsOf(b)
	var lower, upper *SingleDateTime
	if l, ok := pickBound(ba.lower, ba.hasLower, bb.lower, bb.hasLower, 1); ok {
		lower = &l
	}
	if u, ok := pickBound(ba.upper, ba.hasUpper, bb.upper, bb.hasUpper, -1); ok {
		upper = &u
	}
	result, err := Normalize(lower, upper)
	if err != nil {
		// overlapping spans always leave lower <= upper
		panic(err.Error())
	}
	return result, true
}

// pickBound selects the bound winning in direction dir (1 = later, -1 =
// earlier), falling back to the finer value on ties.
func pickBound(x SingleDateTime, hasX bool, y SingleDateTime, hasY bool, dir int) (SingleDateTime, bool) {
	switch {
	case !hasX && !hasY:
		return SingleDateTime{}, false
	case !hasX:
		return y, true
	case !hasY:
		return x, true
	}
	cmp := x.CompareTo(y) * dir
	switch {
	case cmp > 0:
		return x, true
	case cmp < 0:
		return y, true
	case y.n > x.n:
		return y, true
	default:
		return x, true
	}
}
