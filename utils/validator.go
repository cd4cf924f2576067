package utils

import (
	"math"
	"regexp"
	"unicode/utf8"
)

const (
	MinPasswordLength = 6
	MinRating         = 0.0
	MaxRating         = 5.0
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-z]+\.+[a-z]+$`)

// IsEmailValid checks the structure local@domain.tld. Deliverability is not checked.
func IsEmailValid(email string) bool {
	return emailPattern.MatchString(email)
}

// IsWeakPassword reports whether the password is shorter than MinPasswordLength characters.
func IsWeakPassword(password string) bool {
	return utf8.RuneCountInString(password) < MinPasswordLength
}

func IsValidRating(rating float64) bool {
	return !math.IsNaN(rating) && rating >= MinRating && rating <= MaxRating
}
