package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:                 "b1",
		CustomerPhone:      "+15550100",
		PartySize:          4,
		Date:               time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		StartTime:          64800,
		SpecialRequests:    "window seat",
		Source:             domain.BookingSourceVoiceAI,
		CancellationReason: "plans changed",
	}
}

func TestConfirmedText(t *testing.T) {
	text := confirmedText(testBooking(), &domain.Table{Number: 7, Location: "patio"})

	assert.Contains(t, text, "Table: 7 (patio)")
	assert.Contains(t, text, "Date: 2024-01-01 18:00")
	assert.Contains(t, text, "Party size: 4")
	assert.Contains(t, text, "Requests: window seat")
	assert.Contains(t, text, "Via voice assistant")
}

func TestCancelledText(t *testing.T) {
	text := cancelledText(testBooking())

	assert.Contains(t, text, "Booking cancelled")
	assert.Contains(t, text, "Reason: plans changed")
	assert.Contains(t, text, "`b1`")
}

func TestNotificationText_EscapesMarkdown(t *testing.T) {
	b := testBooking()
	b.SpecialRequests = "high_chair *two*"
	b.CancellationReason = "see `notes` [here]"

	confirmed := confirmedText(b, &domain.Table{Number: 7, Location: "roof_top"})
	assert.Contains(t, confirmed, `Requests: high\_chair \*two\*`)
	assert.Contains(t, confirmed, `Table: 7 (roof\_top)`)

	cancelled := cancelledText(b)
	assert.Contains(t, cancelled, "Reason: see \\`notes\\` \\[here]")
	assert.Contains(t, cancelled, "`b1`")
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	n, err := NewTelegramNotifier("", 42, log)
	require.NoError(t, err)
	assert.Nil(t, n.bot)

	n.NotifyBookingConfirmed(context.Background(), testBooking(), &domain.Table{Number: 1})
	n.NotifyBookingCancelled(context.Background(), testBooking())
}
