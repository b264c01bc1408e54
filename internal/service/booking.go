package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/matcher"
	"github.com/stpnv0/TableBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const confirmationMessage = "Your booking has been confirmed. We look forward to seeing you!"

type BookingService struct {
	bookingRepo  ports.BookingRepo
	tableRepo    ports.TableRepo
	customerRepo ports.CustomerRepo
	notifier     ports.BookingNotifier
	publisher    ports.EventPublisher
	locker       ports.SlotLocker
	checker      *matcher.AvailabilityChecker
	logger       logger.Logger
	now          func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	tableRepo ports.TableRepo,
	customerRepo ports.CustomerRepo,
	notifier ports.BookingNotifier,
	publisher ports.EventPublisher,
	locker ports.SlotLocker,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		tableRepo:    tableRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
		publisher:    publisher,
		locker:       locker,
		checker:      matcher.NewAvailabilityChecker(bookingRepo),
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

type slot struct {
	date  time.Time
	start int
}

func parseSlot(date, clock string) (slot, error) {
	d, err := domain.ParseDate(date)
	if err != nil {
		return slot{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	start, err := domain.ParseWallClock(clock)
	if err != nil {
		return slot{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	return slot{date: d, start: start}, nil
}

func validateCreate(in domain.CreateBookingInput) error {
	switch {
	case strings.TrimSpace(in.CustomerName) == "":
		return fmt.Errorf("%w: customer name is required", domain.ErrValidation)
	case strings.TrimSpace(in.CustomerPhone) == "":
		return fmt.Errorf("%w: customer phone is required", domain.ErrValidation)
	case strings.TrimSpace(in.CustomerEmail) == "":
		return fmt.Errorf("%w: customer email is required", domain.ErrValidation)
	case in.PartySize < 1:
		return fmt.Errorf("%w: party size must be a positive integer", domain.ErrValidation)
	}
	return nil
}

// CreateBooking places a booking on the smallest free table that fits the party.
func (s *BookingService) CreateBooking(ctx context.Context, in domain.CreateBookingInput) (*domain.BookingConfirmation, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	sl, err := parseSlot(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	tables, err := s.tableRepo.List(ctx, in.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("load tables: %w", err)
	}

	free, err := s.checker.FilterAvailable(ctx, tables, sl.date, sl.start, domain.DefaultBookingDuration)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}

	candidates := matcher.FilterSuitable(free, in.PartySize, in.SeatingPreference)
	table := matcher.SelectOptimal(candidates, in.PartySize, false)
	if table == nil {
		s.logger.Info("booking rejected",
			logger.String("restaurant_id", in.RestaurantID),
			logger.Int("party_size", in.PartySize),
			logger.String("date", in.Date),
			logger.String("time", in.Time),
		)
		return nil, domain.ErrNoSuitableTable
	}

	key := lockKey(table.ID, sl.date)
	token, err := s.locker.Acquire(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("lock table slot: %w", err)
	}
	defer func() {
		if err := s.locker.Release(context.WithoutCancel(ctx), key, token); err != nil {
			s.logger.Warn("failed to release slot lock",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		}
	}()

	ok, err := s.checker.IsAvailable(ctx, table.ID, sl.date, sl.start, domain.DefaultBookingDuration)
	if err != nil {
		return nil, fmt.Errorf("recheck availability: %w", err)
	}
	if !ok {
		return nil, domain.ErrNoSuitableTable
	}

	customerID, err := s.upsertCustomer(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("upsert customer: %w", err)
	}

	source := in.Source
	if source == "" {
		source = domain.BookingSourceAPI
	}

	now := s.now()
	booking := &domain.Booking{
		ID:              uuid.New().String(),
		TableID:         table.ID,
		CustomerID:      customerID,
		RestaurantID:    table.RestaurantID,
		CustomerPhone:   in.CustomerPhone,
		PartySize:       in.PartySize,
		Date:            sl.date,
		StartTime:       sl.start,
		Duration:        domain.DefaultBookingDuration,
		Status:          domain.BookingStatusConfirmed,
		SpecialRequests: in.SpecialRequests,
		Source:          source,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		// customer row is already written; left for manual reconciliation
		s.logger.Error("booking insert failed after customer upsert",
			logger.String("customer_id", customerID),
			logger.String("table_id", table.ID),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("table_id", table.ID),
		logger.Int("table_number", table.Number),
		logger.String("customer_id", customerID),
	)

	if err = s.publisher.PublishBookingConfirmed(ctx, booking); err != nil {
		s.logger.Error("failed to publish booking confirmed",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
	}
	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), booking, table)

	return &domain.BookingConfirmation{
		BookingID:   booking.ID,
		Date:        in.Date,
		Time:        in.Time,
		TableID:     table.ID,
		TableNumber: table.Number,
		Message:     confirmationMessage,
	}, nil
}

func (s *BookingService) upsertCustomer(ctx context.Context, in domain.CreateBookingInput) (string, error) {
	today := s.now().Truncate(24 * time.Hour)

	existing, err := s.customerRepo.GetByEmail(ctx, in.CustomerEmail)
	switch {
	case err == nil:
		if err = s.customerRepo.RecordVisit(ctx, existing.ID, today); err != nil {
			return "", fmt.Errorf("record visit: %w", err)
		}
		return existing.ID, nil
	case !errors.Is(err, domain.ErrCustomerNotFound):
		return "", fmt.Errorf("get customer: %w", err)
	}

	c := &domain.Customer{
		ID:               uuid.New().String(),
		Name:             in.CustomerName,
		Email:            in.CustomerEmail,
		Phone:            in.CustomerPhone,
		FirstVisit:       today,
		LastVisit:        today,
		VisitCount:       1,
		PreferredSeating: in.SeatingPreference,
		Status:           domain.CustomerStatusRegular,
		CreatedAt:        s.now(),
	}
	err = s.customerRepo.Create(ctx, c)
	switch {
	case err == nil:
		return c.ID, nil
	case !errors.Is(err, domain.ErrCustomerExists):
		return "", fmt.Errorf("create customer: %w", err)
	}

	// a concurrent booking created the customer after our lookup
	existing, err = s.customerRepo.GetByEmail(ctx, in.CustomerEmail)
	if err != nil {
		return "", fmt.Errorf("get customer: %w", err)
	}
	if err = s.customerRepo.RecordVisit(ctx, existing.ID, today); err != nil {
		return "", fmt.Errorf("record visit: %w", err)
	}
	return existing.ID, nil
}

// CheckAvailability reports the table that CreateBooking would pick, without booking it.
func (s *BookingService) CheckAvailability(ctx context.Context, in domain.AvailabilityInput) (*domain.AvailabilityResult, error) {
	if in.PartySize < 1 {
		return nil, fmt.Errorf("%w: party size must be a positive integer", domain.ErrValidation)
	}
	sl, err := parseSlot(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	tables, err := s.tableRepo.List(ctx, in.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("load tables: %w", err)
	}

	candidates := matcher.FilterSuitable(tables, in.PartySize, in.SeatingPreference)

	free, err := s.checker.FilterAvailable(ctx, candidates, sl.date, sl.start, domain.DefaultBookingDuration)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}

	table := matcher.SelectOptimal(free, in.PartySize, true)
	if table == nil {
		return nil, domain.ErrNoSuitableTable
	}

	return &domain.AvailabilityResult{
		Time:         in.Time,
		TableNumbers: []int{table.Number},
	}, nil
}

// CancelBooking marks the booking cancelled and reopens its table.
// The table is reopened even if other bookings still hold it.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID, reason string) (*domain.Booking, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, fmt.Errorf("%w: booking reference is required", domain.ErrValidation)
	}
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: cancellation reason is required", domain.ErrValidation)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if err = s.bookingRepo.Cancel(ctx, bookingID, reason); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	if err = s.tableRepo.SetStatus(ctx, booking.TableID, domain.TableStatusAvailable); err != nil {
		return nil, fmt.Errorf("reopen table: %w", err)
	}

	booking.Status = domain.BookingStatusCancelled
	booking.CancellationReason = reason
	booking.UpdatedAt = s.now()

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("table_id", booking.TableID),
		logger.String("reason", reason),
	)

	if err = s.publisher.PublishBookingCancelled(ctx, booking); err != nil {
		s.logger.Error("failed to publish booking cancelled",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
	}
	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// LookupBookings finds bookings by customer phone or booking id.
func (s *BookingService) LookupBookings(ctx context.Context, identifier, restaurantID string) ([]*domain.Booking, error) {
	if strings.TrimSpace(identifier) == "" {
		return nil, fmt.Errorf("%w: identifier is required", domain.ErrValidation)
	}
	return s.bookingRepo.FindByIdentifier(ctx, identifier, restaurantID)
}

func (s *BookingService) CompleteFinished(ctx context.Context) ([]*domain.Booking, error) {
	done, err := s.bookingRepo.CompleteFinished(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("complete finished: %w", err)
	}

	if len(done) > 0 {
		s.logger.Info("finished bookings completed",
			logger.Int("count", len(done)),
		)
	}

	return done, nil
}

func lockKey(tableID string, date time.Time) string {
	return "slot:" + tableID + ":" + date.Format(domain.DateLayout)
}
