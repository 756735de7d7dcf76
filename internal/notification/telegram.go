package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type ChatSender interface {
	Send(ctx context.Context, text string) error
}

// TelegramAlerter posts booking alerts into the recruiting-team channel.
// An empty token disables the channel.
type TelegramAlerter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramAlerter(token string, chatID int64, log logger.Logger) (*TelegramAlerter, error) {
	if token == "" {
		log.Warn("telegram bot token is empty, chat alerts disabled")
		return &TelegramAlerter{bot: nil, chatID: chatID, logger: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramAlerter{bot: bot, chatID: chatID, logger: log}, nil
}

func (t *TelegramAlerter) Send(ctx context.Context, text string) error {
	if t.bot == nil || t.chatID == 0 {
		t.logger.Debug("chat alert skipped (alerter disabled)",
			logger.String("text", text),
		)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}

	return nil
}
