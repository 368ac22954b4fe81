// internal/utils/mask.go
package utils

import "strings"

// MaskCardNumber reduces a card-like identifier to a non-reversible
// display form keeping at most the last four digits. Anything shorter
// than five digits is fully masked.
func MaskCardNumber(number string) string {
	var digits []rune
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}

	if len(digits) == 0 {
		return "****"
	}
	if len(digits) <= 4 {
		return strings.Repeat("*", len(digits))
	}
	return "**** **** **** " + string(digits[len(digits)-4:])
}
