package service

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"rehberlik_backend/internals/configs"
)

/* =========================================================
 * TELEGRAM TRANSPORT — Bot API sendMessage
 * Gönderim hatası render edilmiş metni ASLA çöpe atmaz; caller
 * metni snapshot'a yine de yazabilir (DeliveryFailed ayrı yüzer).
 * ========================================================= */

var ErrDeliveryFailed = errors.New("telegram gönderimi başarısız")
var ErrNotConfigured = errors.New("telegram yapılandırılmamış")

type TelegramService struct {
	BotToken string
	ChatID   string
}

func NewTelegramService() *TelegramService {
	return &TelegramService{
		BotToken: configs.TelegramBotToken,
		ChatID:   configs.TelegramChatID,
	}
}

func (t *TelegramService) Configured() bool {
	return t.BotToken != "" && t.ChatID != ""
}

// Send anlatı metnini Markdown parse modunda iletir.
func (t *TelegramService) Send(text string) error {
	if !t.Configured() {
		return ErrNotConfigured
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.BotToken)

	agent := fiber.Post(url)
	agent.JSON(fiber.Map{
		"chat_id":    t.ChatID,
		"text":       text,
		"parse_mode": "Markdown",
	})

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, errs[0])
	}
	if code != fiber.StatusOK {
		return fmt.Errorf("%w: status=%d body=%s", ErrDeliveryFailed, code, truncate(string(body), 200))
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
