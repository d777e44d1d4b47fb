package models

import "time"

// User is a web account. It only takes part in games as a player kind.
type User struct {
	tableName struct{} `pg:"users"`

	ID        int64     `json:"id" pg:",pk"`
	Email     string    `json:"email" pg:",notnull,unique"`
	Username  *string   `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at" pg:",notnull"`
}
