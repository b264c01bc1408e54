package domain

import "time"

const CustomerStatusRegular = "Regular"

type Customer struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	FirstVisit       time.Time `json:"first_visit"`
	LastVisit        time.Time `json:"last_visit"`
	VisitCount       int       `json:"visit_count"`
	PreferredSeating string    `json:"preferred_seating"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}
