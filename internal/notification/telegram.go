package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/SalonBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

var statusTitles = map[domain.ReservationStatus]string{
	domain.StatusRequested:       "Запись ожидает подтверждения",
	domain.StatusConfirmed:       "Запись подтверждена!",
	domain.StatusInProgress:      "Процедура началась",
	domain.StatusCompleted:       "Визит завершён, спасибо!",
	domain.StatusCancelledByUser: "Запись отменена вами",
	domain.StatusCancelledByShop: "Запись отменена салоном",
	domain.StatusNoShow:          "Визит отмечен как неявка",
}

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, user *domain.User, r *domain.Reservation) {
	n.send(ctx, user.TelegramChatID, createdText(r))
}

func (n *TelegramNotifier) NotifyStatusChanged(ctx context.Context, user *domain.User, r *domain.Reservation, from domain.ReservationStatus) {
	n.send(ctx, user.TelegramChatID, statusText(r, from))
}

func createdText(r *domain.Reservation) string {
	return fmt.Sprintf(
		"*Вы записаны!*\n\n"+"Дата и время (UTC): %s %s\n"+"Длительность: %d мин\n"+"Сумма: %s, предоплата: %s",
		r.ReservationDate.Format("02.01.2006"),
		r.ReservationTime,
		r.DurationMinutes,
		formatAmount(r.TotalAmount),
		formatAmount(r.DepositAmount),
	)
}

func statusText(r *domain.Reservation, from domain.ReservationStatus) string {
	title, ok := statusTitles[r.Status]
	if !ok {
		title = "Статус записи изменён"
	}
	return fmt.Sprintf(
		"*%s*\n\n"+"Дата и время (UTC): %s %s\n"+"Статус: %s → %s",
		title,
		r.ReservationDate.Format("02.01.2006"),
		r.ReservationTime,
		from, r.Status,
	)
}

// formatAmount renders minor units (kopecks) as rubles.
func formatAmount(v int64) string {
	return fmt.Sprintf("%d.%02d ₽", v/100, v%100)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
