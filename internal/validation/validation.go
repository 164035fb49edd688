// Package validation holds the ward's field rules: staff id shape, password
// complexity and age. All checks are pure.
package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const MinPasswordLength = 8

var (
	digitsOnly       = regexp.MustCompile(`^[0-9]+$`)
	hasLowercase     = regexp.MustCompile(`[a-z]`)
	hasUppercase     = regexp.MustCompile(`[A-Z]`)
	hasDigit         = regexp.MustCompile(`[0-9]`)
	hasSpecialSymbol = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// IsDigits reports whether s is a non-empty string of ASCII digits.
func IsDigits(s string) bool {
	return digitsOnly.MatchString(s)
}

// IsStepSequence reports whether every digit of digits differs from the
// previous one by exactly step. Strings shorter than two digits never qualify.
func IsStepSequence(digits string, step int) bool {
	if len(digits) < 2 {
		return false
	}
	for i := 1; i < len(digits); i++ {
		prev := int(digits[i-1] - '0')
		cur := int(digits[i] - '0')
		if cur-prev != step {
			return false
		}
	}
	return true
}

// CheckID returns ErrInvalidIDFormat or ErrInvalidIDSequence for a bad staff id.
func CheckID(id string) error {
	if !IsDigits(id) {
		return ErrInvalidIDFormat
	}
	if IsStepSequence(id, 1) || IsStepSequence(id, -1) {
		return ErrInvalidIDSequence
	}
	return nil
}

// ValidID accepts all-digit ids that are not a strict +1 or -1 run.
// "1234", "4321" and "12" are rejected; "1235", "1919" and "7" are accepted.
func ValidID(id string) bool {
	return CheckID(id) == nil
}

// ValidPassword requires MinPasswordLength characters (runes, not bytes) with at least one
// lowercase letter, uppercase letter, digit and symbol.
func ValidPassword(pw string) bool {
	if utf8.RuneCountInString(pw) < MinPasswordLength {
		return false
	}
	return hasLowercase.MatchString(pw) &&
		hasUppercase.MatchString(pw) &&
		hasDigit.MatchString(pw) &&
		hasSpecialSymbol.MatchString(pw)
}

// ValidAge accepts finite ages of at least 1.
func ValidAge(age float64) bool {
	if math.IsNaN(age) || math.IsInf(age, 0) {
		return false
	}
	return age >= 1
}

// ParseAge reads a form value the way a browser number field is read: blank
// is zero, anything non-numeric is reported with ok == false.
func ParseAge(raw string) (age float64, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// CheckAge parses raw and returns ErrInvalidAge unless it is a valid age.
func CheckAge(raw string) (float64, error) {
	age, ok := ParseAge(raw)
	if !ok || !ValidAge(age) {
		return 0, ErrInvalidAge
	}
	return age, nil
}
