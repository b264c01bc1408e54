package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const hour = 3600

func TestInterval_TouchingDoesNotOverlap(t *testing.T) {
	first := NewInterval(18*hour, 2*hour)
	second := NewInterval(20*hour, 2*hour)

	assert.False(t, first.Overlaps(second))
	assert.False(t, second.Overlaps(first))
}

func TestInterval_OneMinuteEarlierOverlaps(t *testing.T) {
	early := NewInterval(19*hour+59*60, 2*hour)
	late := NewInterval(20*hour, 2*hour)

	assert.True(t, early.Overlaps(late))
}

func TestInterval_Containment(t *testing.T) {
	outer := NewInterval(17*hour, 4*hour)
	inner := NewInterval(18*hour, hour)

	assert.True(t, outer.Overlaps(inner))
	assert.True(t, inner.Overlaps(outer))
}

func TestInterval_OverlapIsSymmetric(t *testing.T) {
	starts := []int{0, 30 * 60, hour, 90 * 60, 2 * hour, 3 * hour}
	durations := []int{1, 30 * 60, hour, 2 * hour}

	for _, s1 := range starts {
		for _, d1 := range durations {
			for _, s2 := range starts {
				for _, d2 := range durations {
					a := NewInterval(s1, d1)
					b := NewInterval(s2, d2)
					assert.Equal(t, a.Overlaps(b), b.Overlaps(a), "a=%v b=%v", a, b)
				}
			}
		}
	}
}

func TestBooking_IntervalDefaultsDuration(t *testing.T) {
	b := &Booking{StartTime: 18 * hour}

	assert.Equal(t, Interval{Start: 18 * hour, End: 20 * hour}, b.Interval())
}

func TestTable_Admits(t *testing.T) {
	table := &Table{Capacity: 4, MinParty: 2, MaxParty: 4}

	assert.False(t, table.Admits(1))
	assert.True(t, table.Admits(2))
	assert.True(t, table.Admits(4))
	assert.False(t, table.Admits(5))

	narrow := &Table{Capacity: 2, MinParty: 1, MaxParty: 6}
	assert.False(t, narrow.Admits(3))
}
