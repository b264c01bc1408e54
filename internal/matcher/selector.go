package matcher

import (
	"slices"

	"github.com/stpnv0/TableBooker/internal/domain"
)

// SelectOptimal returns the smallest-capacity table that admits partySize, or nil.
// Tables of equal capacity keep their input order. The input slice is not modified.
//
// approximate is accepted for callers that ask for a near fit (party close to 70% of
// capacity) but does not change the result: the first admitting table always wins.
func SelectOptimal(tables []*domain.Table, partySize int, approximate bool) *domain.Table {
	_ = approximate

	sorted := slices.Clone(tables)
	slices.SortStableFunc(sorted, func(a, b *domain.Table) int {
		return a.Capacity - b.Capacity
	})

	for _, t := range sorted {
		if t.Admits(partySize) {
			return t
		}
	}
	return nil
}
