package ports

import "context"

// SlotLocker serialises booking writes for one table on one date.
type SlotLocker interface {
	Acquire(ctx context.Context, key string) (token string, err error)
	Release(ctx context.Context, key, token string) error
}
