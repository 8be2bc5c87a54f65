package utils

import (
	"fmt"
	rndm "math/rand"
	"strings"
	"time"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")
var digitRunes = []rune("0123456789")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// GenerateRandomDigitString creates a random numeric string of length n.
func GenerateRandomDigitString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = digitRunes[rndm.Intn(len(digitRunes))]
	}
	return string(b)
}

// NewOrderID returns a time-derived order id. Unique per process; a random
// suffix keeps collisions out of a single millisecond burst.
func NewOrderID() string {
	return fmt.Sprintf("ORD%d%s", time.Now().UnixMilli(), GenerateRandomDigitString(3))
}

// --- Formatting ---

// FormatNaira renders a whole-Naira amount with thousands separators.
func FormatNaira(amount int) string {
	s := fmt.Sprintf("%d", amount)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := "₦" + strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// --- Validation helpers ---

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
