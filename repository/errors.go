package repository

import "errors"

var (
	// ErrNotFound is returned when the target row is absent or not owned
	// by the caller. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken is returned when a user insert hits the unique email
	// constraint.
	ErrEmailTaken = errors.New("email already registered")
)
