package notification

import (
	"context"
	"fmt"

	"github.com/SALI676/booking-dolphin-spa201/internal/domain"
	"github.com/SALI676/booking-dolphin-spa201/internal/timefmt"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

// Send delivers the booking alert to the configured chat. The caller decides
// what a failure means; creating a booking treats it as best effort.
func (n *TelegramNotifier) Send(ctx context.Context, b *domain.Booking) error {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)",
			logger.Int64("booking_id", b.ID),
		)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled: %w", err)
	}

	msg := tgbotapi.NewMessage(n.chatID, BookingMessage(b))
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}

	n.logger.Info("booking alert sent",
		logger.Int64("booking_id", b.ID),
		logger.Int64("chat_id", n.chatID),
	)

	return nil
}

// BookingMessage renders the alert the parlour staff receives for a new
// booking. Unset preferences are spelled out rather than omitted.
func BookingMessage(b *domain.Booking) string {
	date, clock := timefmt.Format(b.Datetime)

	return fmt.Sprintf(
		"✅ *New Booking*\n\n"+
			"Customer's name: %s\n"+
			"Phone: %s\n"+
			"Service: %s\n"+
			"Duration: %s\n"+
			"Price: %s\n"+
			"Date: *%s*\n"+
			"Time: *%s*\n\n"+
			"Remarks:\n"+
			"1. Aroma Oil: %s\n"+
			"2. Pressure: %s\n"+
			"3. Body area to focus: %s\n"+
			"4. Body area to avoid: %s\n\n"+
			"🔔 Please prepare the room.",
		b.Name, b.Phone, b.Service, b.Duration, b.Price, date, clock,
		orFallback(b.AromaOil, "Not specified"),
		orFallback(b.Pressure, "Not specified"),
		orFallback(b.FocusArea, "None"),
		orFallback(b.AvoidArea, "None"),
	)
}

func orFallback(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}
