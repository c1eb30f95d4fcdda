// internal/domain/phone/phone.go
package phone

import (
	"errors"
	"strings"
)

// MinDigits is the shortest canonical phone accepted as a query.
const MinDigits = 7

// ErrInvalidPhone is returned when a query phone is too short after canonicalization.
var ErrInvalidPhone = errors.New("phone number must contain at least 7 digits")

// Canonicalize removes every non-digit character and then strips leading zeros.
func Canonicalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return strings.TrimLeft(b.String(), "0")
}

// Matches reports whether two phone strings have the same canonical form.
func Matches(a, b string) bool {
	return Canonicalize(a) == Canonicalize(b)
}

// Validate canonicalizes a query phone and rejects it if it is shorter than MinDigits.
func Validate(text string) (string, error) {
	canonical := Canonicalize(text)
	if len(canonical) < MinDigits {
		return "", ErrInvalidPhone
	}
	return canonical, nil
}

// Mask hides all but the last four digits of a canonical phone for logging.
func Mask(canonical string) string {
	if len(canonical) <= 4 {
		return strings.Repeat("*", len(canonical))
	}
	return strings.Repeat("*", len(canonical)-4) + canonical[len(canonical)-4:]
}
