package api

import (
	"fmt"
	"strings"
)

type deepLinks struct {
	Telegram string `json:"telegram"`
	Web      string `json:"web"`
}

// DeepLinkBuilder renders links that open a proposition in the bot or on the website.
type DeepLinkBuilder struct {
	BotUsername string
	WebBaseURL  string
}

func (b DeepLinkBuilder) Proposition(propositionID int64) deepLinks {
	return deepLinks{
		Telegram: fmt.Sprintf("https://t.me/%s?start=proposition_%d", b.BotUsername, propositionID),
		Web:      fmt.Sprintf("%s/tictactoe/proposition/%d", strings.TrimRight(b.WebBaseURL, "/"), propositionID),
	}
}
