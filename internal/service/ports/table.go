package ports

import (
	"context"

	"github.com/stpnv0/TableBooker/internal/domain"
)

type TableRepo interface {
	List(ctx context.Context, restaurantID string) ([]*domain.Table, error)
	SetStatus(ctx context.Context, id string, status domain.TableStatus) error
}
