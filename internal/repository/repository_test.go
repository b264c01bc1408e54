package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stpnv0/TableBooker/internal/domain"
)

type fakeExecer struct {
	calls int
	err   error
}

func (f *fakeExecer) ExecContext(_ context.Context, _ string, _ ...any) (sql.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return driverResult(1), nil
}

type driverResult int64

func (r driverResult) LastInsertId() (int64, error) { return 0, nil }
func (r driverResult) RowsAffected() (int64, error) { return int64(r), nil }

func TestBookingRepository_Create_NotRetried(t *testing.T) {
	writer := &fakeExecer{err: errors.New("connection reset")}
	repo := &BookingRepository{writer: writer, strategy: defaultStrategy()}

	err := repo.Create(context.Background(), &domain.Booking{ID: "b1"})

	require.Error(t, err)
	assert.Equal(t, 1, writer.calls)
}

func TestBookingRepository_Create_UnknownTable(t *testing.T) {
	writer := &fakeExecer{err: &pq.Error{Code: "23503"}}
	repo := &BookingRepository{writer: writer, strategy: defaultStrategy()}

	err := repo.Create(context.Background(), &domain.Booking{ID: "b1"})

	assert.ErrorIs(t, err, domain.ErrTableNotFound)
	assert.Equal(t, 1, writer.calls)
}

func TestCustomerRepository_Create_DuplicateEmail(t *testing.T) {
	writer := &fakeExecer{err: &pq.Error{Code: "23505"}}
	repo := &CustomerRepository{writer: writer, strategy: defaultStrategy()}

	err := repo.Create(context.Background(), &domain.Customer{ID: "c1", Email: "a@b.c"})

	assert.ErrorIs(t, err, domain.ErrCustomerExists)
	assert.Equal(t, 1, writer.calls)
}

func TestCustomerRepository_RecordVisit_SingleExec(t *testing.T) {
	writer := &fakeExecer{}
	repo := &CustomerRepository{writer: writer, strategy: defaultStrategy()}

	err := repo.RecordVisit(context.Background(), "c1", time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, 1, writer.calls)
}

func TestCompleteFinishedQuery_ComparesInUTC(t *testing.T) {
	assert.Contains(t, completeFinishedQuery, "AT TIME ZONE 'UTC' < $3")
}
