package deliveryman

import (
	"net/mail"
	"strings"
)

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidID(id int64) bool {
	return id > 0
}
