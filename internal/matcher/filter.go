package matcher

import "github.com/stpnv0/TableBooker/internal/domain"

// FilterSuitable narrows tables to those open for service that can seat partySize.
// A non-empty seatingPreference must match the table location exactly.
func FilterSuitable(tables []*domain.Table, partySize int, seatingPreference string) []*domain.Table {
	res := make([]*domain.Table, 0, len(tables))
	for _, t := range tables {
		if t.Status != domain.TableStatusAvailable || !t.Admits(partySize) {
			continue
		}
		if seatingPreference != "" && t.Location != seatingPreference {
			continue
		}
		res = append(res, t)
	}
	return res
}
