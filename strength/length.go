package strength

import (
	"fmt"
	"unicode/utf16"
)

const MinimumLength = 8

// Length counts UTF-16 code units, so a character outside the basic
// multilingual plane counts as two.
func Length(password string) int {
	return len(utf16.Encode([]rune(password)))
}

func CheckLength(password string) Contribution {
	length := Length(password)

	switch {
	case length >= 16:
		return contribute(40, "Excellent length (16+ characters)", Success)
	case length >= 12:
		return contribute(30, "Good length (12-15 characters)", Success)
	case length >= MinimumLength:
		return contribute(15, "Minimum length of 8 characters met", Warning)
	default:
		return contribute(-20, fmt.Sprintf("Too short. Add %d more characters", MinimumLength-length), Error)
	}
}
