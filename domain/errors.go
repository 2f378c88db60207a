package domain

import "errors"

var (
	// ErrDuplicate is returned when a resume collides with an existing one for
	// the same job, either by file name or by case-insensitive candidate name.
	ErrDuplicate = errors.New("duplicate resume")

	// ErrInvalidToken is returned when an identity token fails verification.
	ErrInvalidToken = errors.New("invalid id token")
)
