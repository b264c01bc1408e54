package ports

import (
	"context"
	"time"

	"github.com/stpnv0/TableBooker/internal/domain"
)

type CustomerRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
	RecordVisit(ctx context.Context, id string, visitDate time.Time) error
}
