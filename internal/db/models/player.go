package models

import "fmt"

type PlayerKind string

func (k PlayerKind) String() string {
	return string(k)
}

const (
	PlayerKindUser   PlayerKind = "user"
	PlayerKindTgUser PlayerKind = "tg_user"
)

func (k PlayerKind) Valid() bool {
	switch k {
	case PlayerKindUser, PlayerKindTgUser:
		return true
	}
	return false
}

func ParsePlayerKind(value string) (PlayerKind, error) {
	kind := PlayerKind(value)
	if !kind.Valid() {
		return "", fmt.Errorf("unknown player kind %q", value)
	}
	return kind, nil
}

// PlayerRef identifies a participant living in either the web user or the Telegram user table.
type PlayerRef struct {
	Kind PlayerKind `json:"kind"`
	ID   int64      `json:"id"`
}

func TgPlayer(telegramID int64) PlayerRef {
	return PlayerRef{Kind: PlayerKindTgUser, ID: telegramID}
}

func WebPlayer(userID int64) PlayerRef {
	return PlayerRef{Kind: PlayerKindUser, ID: userID}
}

func (r PlayerRef) String() string {
	return fmt.Sprintf("%s:%d", r.Kind, r.ID)
}
