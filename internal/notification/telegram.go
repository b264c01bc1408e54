package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts booking updates to the restaurant staff chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking, t *domain.Table) {
	n.send(ctx, confirmedText(b, t))
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) {
	n.send(ctx, cancelledText(b))
}

func confirmedText(b *domain.Booking, t *domain.Table) string {
	clock, _ := domain.FormatSeconds(b.StartTime)
	text := fmt.Sprintf(
		"*New booking*\n\n"+"Table: %d (%s)\n"+"Date: %s %s\n"+"Party size: %d\n"+"Phone: %s\n"+"Reference: `%s`",
		t.Number, escape(t.Location),
		b.Date.Format(domain.DateLayout), clock,
		b.PartySize, escape(b.CustomerPhone), b.ID,
	)
	if b.SpecialRequests != "" {
		text += "\nRequests: " + escape(b.SpecialRequests)
	}
	if b.Source == domain.BookingSourceVoiceAI {
		text += "\nVia voice assistant"
	}
	return text
}

func cancelledText(b *domain.Booking) string {
	clock, _ := domain.FormatSeconds(b.StartTime)
	return fmt.Sprintf(
		"*Booking cancelled*\n\n"+"Date: %s %s\n"+"Party size: %d\n"+"Reason: %s\n"+"Reference: `%s`",
		b.Date.Format(domain.DateLayout), clock,
		b.PartySize, escape(b.CancellationReason), b.ID,
	)
}

// escape keeps caller supplied text from breaking the Markdown message.
func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
