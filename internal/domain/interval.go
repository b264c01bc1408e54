package domain

// Interval is a half-open range [Start, End) of seconds since midnight.
type Interval struct {
	Start int
	End   int
}

func NewInterval(start, duration int) Interval {
	return Interval{Start: start, End: start + duration}
}

// Overlaps reports whether the two intervals share at least one instant.
// Intervals that only touch at a boundary do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}
