package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"tictactoe_matchmaking/internal/apperrors"
)

const (
	maxNameLength         = 255
	maxLanguageCodeLength = 10
)

type TgUser struct {
	tableName struct{} `pg:"tg_users"`

	ID                    int64     `json:"id" pg:",pk"`
	FirstName             string    `json:"tg_first_name" pg:"tg_first_name,notnull"`
	LastName              *string   `json:"tg_last_name" pg:"tg_last_name"`
	Username              *string   `json:"tg_username" pg:"tg_username"`
	IsBot                 bool      `json:"is_bot" pg:",notnull,use_zero"`
	LanguageCode          *string   `json:"language_code"`
	IsPremium             *bool     `json:"is_premium"`
	AddedToAttachmentMenu *bool     `json:"added_to_attachment_menu"`
	CreatedAt             time.Time `json:"created_at" pg:",notnull"`
	UpdatedAt             time.Time `json:"updated_at" pg:",notnull"`
	IsActive              bool      `json:"is_active" pg:",notnull,use_zero"`
}

type TgStartAttempt struct {
	tableName struct{} `pg:"tg_start_attempts"`

	ID          int64     `json:"id" pg:",pk"`
	TgUserID    int64     `json:"tg_user_id" pg:",notnull"`
	AttemptTime time.Time `json:"attempt_time" pg:",notnull"`
}

func (u *TgUser) FullName() string {
	parts := []string{u.FirstName}
	if u.LastName != nil && *u.LastName != "" {
		parts = append(parts, *u.LastName)
	}
	return strings.Join(parts, " ")
}

func (u *TgUser) String() string {
	if u.Username != nil && *u.Username != "" {
		return fmt.Sprintf("username: %s", *u.Username)
	}
	return fmt.Sprintf("first_name: %s (%d)", u.FirstName, u.ID)
}

func (u *TgUser) Validate() error {
	if u.ID <= 0 {
		return apperrors.NewValidation("id", "Ensure this value is greater than or equal to 1.")
	}
	if u.FirstName == "" {
		return apperrors.NewValidation("tg_first_name", "This field may not be blank.")
	}

	limits := []struct {
		field string
		value *string
		max   int
	}{
		{"tg_first_name", &u.FirstName, maxNameLength},
		{"tg_last_name", u.LastName, maxNameLength},
		{"tg_username", u.Username, maxNameLength},
		{"language_code", u.LanguageCode, maxLanguageCodeLength},
	}
	for _, limit := range limits {
		if limit.value != nil && utf8.RuneCountInString(*limit.value) > limit.max {
			return apperrors.NewValidation(limit.field, fmt.Sprintf("Ensure this field has no more than %d characters.", limit.max))
		}
	}

	return nil
}

// Merge copies the profile fields of incoming that differ from u and returns the changed column names.
// Nil optional fields of incoming count as not provided and are left alone.
func (u *TgUser) Merge(incoming *TgUser) []string {
	var columns []string

	if u.FirstName != incoming.FirstName {
		u.FirstName = incoming.FirstName
		columns = append(columns, "tg_first_name")
	}
	if incoming.LastName != nil && !equalPtr(u.LastName, incoming.LastName) {
		u.LastName = incoming.LastName
		columns = append(columns, "tg_last_name")
	}
	if incoming.Username != nil && !equalPtr(u.Username, incoming.Username) {
		u.Username = incoming.Username
		columns = append(columns, "tg_username")
	}
	if u.IsBot != incoming.IsBot {
		u.IsBot = incoming.IsBot
		columns = append(columns, "is_bot")
	}
	if incoming.LanguageCode != nil && !equalPtr(u.LanguageCode, incoming.LanguageCode) {
		u.LanguageCode = incoming.LanguageCode
		columns = append(columns, "language_code")
	}
	if incoming.IsPremium != nil && !equalPtr(u.IsPremium, incoming.IsPremium) {
		u.IsPremium = incoming.IsPremium
		columns = append(columns, "is_premium")
	}
	if incoming.AddedToAttachmentMenu != nil && !equalPtr(u.AddedToAttachmentMenu, incoming.AddedToAttachmentMenu) {
		u.AddedToAttachmentMenu = incoming.AddedToAttachmentMenu
		columns = append(columns, "added_to_attachment_menu")
	}

	return columns
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
