package common

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"gojournal/internal/apperr"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 50 {
		return apperr.InvalidArg("username must be between 3 and 50 characters")
	}
	if !usernameRegex.MatchString(username) {
		return apperr.InvalidArg("username can only contain letters, numbers, hyphens and underscores")
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 8 {
		return apperr.InvalidArg("password must be at least 8 characters long")
	}
	if len(password) > MaxPasswordBytes {
		return apperr.InvalidArg("password is too long")
	}
	return nil
}

func ValidateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(email) > 255 || !emailRegex.MatchString(email) {
		return apperr.InvalidArg("invalid email format")
	}
	return nil
}

func ValidateDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperr.InvalidArg("display name is required")
	}
	if utf8.RuneCountInString(name) > 100 {
		return apperr.InvalidArg("display name must be at most 100 characters")
	}
	return nil
}

// NormalizeText trims s and enforces a character limit. Empty text is only
// accepted when allowEmpty is set.
func NormalizeText(field, s string, maxLen int, allowEmpty bool) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" && !allowEmpty {
		return "", apperr.InvalidArg(fmt.Sprintf("%s cannot be empty", field))
	}
	if maxLen > 0 && utf8.RuneCountInString(s) > maxLen {
		return "", apperr.InvalidArg(fmt.Sprintf("%s must be at most %d characters", field, maxLen))
	}
	return s, nil
}
