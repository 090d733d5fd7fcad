package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrSeatAlreadyBooked = errors.New("seat is already booked for this movie session")
	ErrInvalidReference  = errors.New("referenced record does not exist")
	ErrBoundsViolation   = errors.New("seat is outside of the cinema hall")
)
