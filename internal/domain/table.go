package domain

type TableStatus string

const (
	TableStatusAvailable    TableStatus = "Available"
	TableStatusOccupied     TableStatus = "Occupied"
	TableStatusOutOfService TableStatus = "OutOfService"
)

type Table struct {
	ID           string      `json:"id"`
	RestaurantID string      `json:"restaurant_id"`
	Number       int         `json:"table_number"`
	Capacity     int         `json:"capacity"`
	MinParty     int         `json:"minimum_party"`
	MaxParty     int         `json:"maximum_party"`
	Location     string      `json:"location"`
	Status       TableStatus `json:"status"`
}

// Admits reports whether the table's party-size bounds and seat count allow partySize.
func (t *Table) Admits(partySize int) bool {
	return partySize >= t.MinParty &&
		partySize <= t.MaxParty &&
		partySize <= t.Capacity
}
