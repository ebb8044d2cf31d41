package auth

import (
	"errors"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var (
	ErrInvalidEmail       = errors.New("Formato de email inválido")
	ErrInvalidCredentials = errors.New("Credenciales inválidas")

	errPasswordTooShort  = errors.New("La contraseña debe tener al menos 12 caracteres")
	errPasswordNoUpper   = errors.New("La contraseña debe contener al menos una mayúscula")
	errPasswordNoLower   = errors.New("La contraseña debe contener al menos una minúscula")
	errPasswordNoDigit   = errors.New("La contraseña debe contener al menos un número")
	errPasswordNoSpecial = errors.New("La contraseña debe contener al menos un carácter especial")
)

// ValidEmail reports whether the address has a plausible mailbox format.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePassword enforces the password strength rules. The returned
// error carries the human-readable message shown to the user.
func ValidatePassword(password string) error {
	if len(password) < 12 {
		return errPasswordTooShort
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return errPasswordNoUpper
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		return errPasswordNoLower
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		return errPasswordNoDigit
	}
	if !strings.ContainsAny(password, "@$!%*?&.,#^()_+-=[]{};':\"\\|<>/`~") {
		return errPasswordNoSpecial
	}
	return nil
}

var sanitizer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// Sanitize HTML-escapes user input before it is stored or echoed back.
func Sanitize(input string) string {
	return sanitizer.Replace(input)
}
