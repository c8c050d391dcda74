package datetime

import (
	"fmt"

	"github.com/pkg/errors"
)

// Interval is the span a temporal expression denotes. The set of shapes is
// closed: Bounded, LowerLimited, UpperLimited and Unbounded.
type Interval interface {
	Lower() (SingleDateTime, bool)
	Upper() (SingleDateTime, bool)
	Contains(point SingleDateTime) bool
	Overlaps(other Interval) bool
	Precedes(other Interval) bool
	String() string

	interval()
}

var (
	_ Interval = Bounded{}
	_ Interval = LowerLimited{}
	_ Interval = UpperLimited{}
	_ Interval = Unbounded{}
)

// Bounded is a closed span [from .. to].
type Bounded struct {
	from, to SingleDateTime
}

func NewBounded(from, to SingleDateTime) (Bounded, error) {
	if from.After(to) {
		return Bounded{}, errors.Wrapf(ErrInvalidIntervalBounds, "%v is after %v", from, to)
	}
	return Bounded{from, to}, nil
}

func (b Bounded) From() SingleDateTime { return b.from }
func (b Bounded) To() SingleDateTime   { return b.to }

func (b Bounded) Lower() (SingleDateTime, bool) { return b.from, true }
func (b Bounded) Upper() (SingleDateTime, bool) { return b.to, true }

func (b Bounded) Contains(point SingleDateTime) bool { return Contains(b, point) }
func (b Bounded) Overlaps(other Interval) bool       { return Overlaps(b, other) }
func (b Bounded) Precedes(other Interval) bool       { return Precedes(b, other) }

func (b Bounded) String() string {
	return fmt.Sprintf("[%v .. %v]", b.from, b.to)
}

func (Bounded) interval() {}

// LowerLimited is open-ended upward, e.g. "since March".
type LowerLimited struct {
	from SingleDateTime
}

func NewLowerLimited(from SingleDateTime) LowerLimited {
	return LowerLimited{from}
}

func (l LowerLimited) From() SingleDateTime { return l.from }

func (l LowerLimited) Lower() (SingleDateTime, bool) { return l.from, true }
func (l LowerLimited) Upper() (SingleDateTime, bool) { return SingleDateTime{}, false }

func (l LowerLimited) Contains(point SingleDateTime) bool { return Contains(l, point) }
func (l LowerLimited) Overlaps(other Interval) bool       { return Overlaps(l, other) }
func (l LowerLimited) Precedes(other Interval) bool       { return Precedes(l, other) }

func (l LowerLimited) String() string {
	return fmt.Sprintf("[%v .. +INF)", l.from)
}

func (LowerLimited) interval() {}

// UpperLimited is open-ended downward, e.g. "until March" or "by March".
type UpperLimited struct {
	to SingleDateTime
}

func NewUpperLimited(to SingleDateTime) UpperLimited {
	return UpperLimited{to}
}

func (u UpperLimited) To() SingleDateTime { return u.to }

func (u UpperLimited) Lower() (SingleDateTime, bool) { return SingleDateTime{}, false }
func (u UpperLimited) Upper() (SingleDateTime, bool) { return u.to, true }

func (u UpperLimited) Contains(point SingleDateTime) bool { return Contains(u, point) }
func (u UpperLimited) Overlaps(other Interval) bool       { return Overlaps(u, other) }
func (u UpperLimited) Precedes(other Interval) bool       { return Precedes(u, other) }

func (u UpperLimited) String() string {
	return fmt.Sprintf("(-INF .. %v]", u.to)
}

func (UpperLimited) interval() {}

// Unbounded has no limit on either side ("always", "ever").
type Unbounded struct{}

func NewUnbounded() Unbounded {
	return Unbounded{}
}

func (Unbounded) Lower() (SingleDateTime, bool) { return SingleDateTime{}, false }
func (Unbounded) Upper() (SingleDateTime, bool) { return SingleDateTime{}, false }

func (u Unbounded) Contains(point SingleDateTime) bool { return true }
func (u Unbounded) Overlaps(other Interval) bool       { return Overlaps(u, other) }
func (u Unbounded) Precedes(other Interval) bool       { return false }

func (Unbounded) String() string {
	return "(-INF .. +INF)"
}

func (Unbounded) interval() {}
