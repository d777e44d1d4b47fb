package extension

import (
	"strings"

	"tictactoe_matchmaking/internal/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func DefaultErrorMessage(chatID int64) tgbotapi.Chattable {
	return ErrorMessage(chatID, "Something went wrong, please try again later.")
}

func ErrorMessage(chatID int64, text string) tgbotapi.Chattable {
	return tgbotapi.NewMessage(chatID, text)
}

func FullName(user *tgbotapi.User) string {
	return strings.TrimSpace(user.FirstName + " " + user.LastName)
}

// TgUserPayload maps a Telegram sender to the identity the backend stores. Empty optional fields are omitted.
func TgUserPayload(user *tgbotapi.User) services.TgUserPayload {
	return services.TgUserPayload{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     optional(user.LastName),
		Username:     optional(user.UserName),
		IsBot:        user.IsBot,
		LanguageCode: optional(user.LanguageCode),
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
