package utils

import (
	"net/mail"
	"strings"
)

func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidEmail accepts a bare address only, without a display name.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email && strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@"):], ".")
}

// OrDefault returns def when s is blank.
func OrDefault(s, def string) string {
	if IsBlank(s) {
		return def
	}
	return strings.TrimSpace(s)
}
