// Package email holds the address helpers shared by the customer forms.
package email

import (
	"strings"
	"unicode"
)

// Normalize trims and lowercases an address so the engine sees one
// identifier per customer.
func Normalize(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// DeriveName guesses a display name from the local part, splitting on the
// usual separators and dropping any +tag: "ada.lovelace+shop@" becomes
// ("Ada", "Lovelace"). last is empty when the local part has one segment.
func DeriveName(address string) (first, last string) {
	localPart := address
	if at := strings.IndexByte(address, '@'); at >= 0 {
		localPart = address[:at]
	}
	if plus := strings.IndexByte(localPart, '+'); plus > 0 {
		localPart = localPart[:plus]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	if len(parts) == 0 {
		return "Customer", ""
	}

	first = capitalize(parts[0])
	if len(parts) > 1 {
		last = capitalize(parts[len(parts)-1])
	}
	return first, last
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
