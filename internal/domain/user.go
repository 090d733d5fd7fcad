package domain

import (
	"context"
	"time"
)

type User struct {
	ID         int
	Username   string
	Email      string
	FirstName  string
	LastName   string
	IsStaff    bool
	IsActive   bool
	DateJoined time.Time
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetById(ctx context.Context, id int) (*User, error)
}
