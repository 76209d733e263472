package user

import (
	"net/mail"
	"strings"
)

const minPasswordLen = 6

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPassword(password string) bool {
	return len(password) >= minPasswordLen
}
