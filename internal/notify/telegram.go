// Package notify доставляет события по заявкам в Telegram-чат координаторов.
package notify

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shenikar/blood_connect/internal/models"
	"github.com/shenikar/blood_connect/internal/webhook"
	"github.com/sirupsen/logrus"
)

// sender - часть tgbotapi.BotAPI, которая нужна уведомителю
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier отправляет текстовое сообщение в чат на каждое событие
type TelegramNotifier struct {
	api    sender
	chatID int64
	logger *logrus.Logger
}

// NewTelegramNotifier авторизуется в Bot API по токену
func NewTelegramNotifier(token string, chatID int64, logger *logrus.Logger) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	logger.WithField("bot", api.Self.UserName).Info("Telegram bot authorized")
	return &TelegramNotifier{api: api, chatID: chatID, logger: logger}, nil
}

// Notify реализует webhook.Notifier
func (n *TelegramNotifier) Notify(ctx context.Context, event webhook.WebhookEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, FormatEvent(event))
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}

// FormatEvent собирает текст сообщения для события
func FormatEvent(event webhook.WebhookEvent) string {
	r := event.Request
	if r == nil {
		return fmt.Sprintf("Event %s", event.Type)
	}

	var b strings.Builder
	switch event.Type {
	case webhook.EventRequestCreated:
		fmt.Fprintf(&b, "%s blood request: %d unit(s) of %s", urgencyTitle(r.Urgency), r.Quantity, r.BloodType)
	case webhook.EventRequestStatusChanged:
		fmt.Fprintf(&b, "Request for %s: %s -> %s", r.BloodType, event.PreviousStatus, r.Status)
	default:
		fmt.Fprintf(&b, "Event %s for %s request", event.Type, r.BloodType)
	}

	if r.RequesterName != "" {
		fmt.Fprintf(&b, "\nRequester: %s", r.RequesterName)
	}
	if r.Address != "" {
		fmt.Fprintf(&b, "\nAddress: %s", r.Address)
	}
	if r.ContactPhone != "" {
		fmt.Fprintf(&b, "\nContact: %s", r.ContactPhone)
	}
	return b.String()
}

func urgencyTitle(u models.Urgency) string {
	if u == "" {
		return "New"
	}
	s := string(u)
	return strings.ToUpper(s[:1]) + s[1:]
}
