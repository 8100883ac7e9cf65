package user

import "github.com/google/uuid"

type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User.Password holds a bcrypt hash once stored. HTTP handlers render a view
// without it.
type User struct {
	ID uuid.UUID `json:"id"`
	InsertUser
}

func (u User) RecordID() uuid.UUID { return u.ID }

func (u User) WithID(id uuid.UUID) User {
	u.ID = id
	return u
}
