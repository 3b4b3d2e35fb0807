package services

import (
	"fmt"
	"html"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"impactio/internal/models"
)

var ErrNotifierDisabled = eris.New("telegram digest is not configured")

type Notifier interface {
	SendDigest(sess *models.Session, m models.Metrics) error
}

type TelegramService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramService(botToken string, chatID int64) (*TelegramService, error) {
	return NewTelegramServiceWithEndpoint(botToken, tgbotapi.APIEndpoint, chatID, &http.Client{Timeout: 15 * time.Second})
}

// NewTelegramServiceWithEndpoint talks to a custom Bot API endpoint (format "<base>/bot%s/%s").
func NewTelegramServiceWithEndpoint(botToken, endpoint string, chatID int64, client *http.Client) (*TelegramService, error) {
	if botToken == "" || chatID == 0 {
		return nil, ErrNotifierDisabled
	}
	bot, err := tgbotapi.NewBotAPIWithClient(botToken, endpoint, client)
	if err != nil {
		return nil, eris.Wrap(err, "telegram: init bot")
	}
	zap.L().Info("telegram bot ready", zap.String("bot", bot.Self.UserName), zap.Int64("chat_id", chatID))
	return &TelegramService{bot: bot, chatID: chatID}, nil
}

func (t *TelegramService) SendDigest(sess *models.Session, m models.Metrics) error {
	if t == nil || t.bot == nil {
		return ErrNotifierDisabled
	}
	msg := tgbotapi.NewMessage(t.chatID, DigestText(sess, m))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := t.bot.Send(msg); err != nil {
		return eris.Wrap(err, "telegram: send digest")
	}
	return nil
}

// DigestText formats the metrics as a Telegram HTML message.
func DigestText(sess *models.Session, m models.Metrics) string {
	who := ""
	if sess != nil && sess.Email != "" {
		who = fmt.Sprintf("\nRequested by %s", html.EscapeString(sess.Email))
	}
	return fmt.Sprintf(
		"<b>Impactio One: leads digest</b>\nTotal leads: <b>%d</b>\nNew leads: <b>%d</b>\nConversations: <b>%d</b>\nConversion rate: <b>%d%%</b>%s",
		m.TotalLeads, m.NewLeads, m.TotalConversations, m.ConversionRate, who,
	)
}
