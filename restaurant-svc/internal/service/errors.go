package service

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrItemNotFound     = errors.New("menu item not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrNoTableAvailable = errors.New("no tables available for the selected date and time")
	ErrTableTaken       = errors.New("table is already booked for the selected date and time")
	ErrEmailTaken       = errors.New("email already exists")
)

// ValidationError reports a rejected field; the mutation did not happen.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// IsValidation separates caller mistakes from storage failures.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
