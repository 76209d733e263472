package recipient

import (
	"strings"

	"fastfeet/internal/entities"
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// validateRequired checks the full recipient schema: name, street, state and
// city non-blank strings, number and zip_code present. Complement is optional.
func validateRequired(m *entities.RecipientModify) error {
	if m.Name == nil || m.Street == nil || m.Number == nil ||
		m.State == nil || m.City == nil || m.ZipCode == nil {
		return ErrMissingRequiredFields
	}
	if isBlank(*m.Name) || isBlank(*m.Street) || isBlank(*m.State) || isBlank(*m.City) {
		return ErrMissingRequiredFields
	}
	return nil
}
