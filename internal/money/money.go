// Package money converts between human decimal amounts and the integer
// minor-unit ("cents") representation used on the wire.
//
// All monetary transport and storage uses integers to avoid floating-point
// drift; this package is the single boundary where text and integers meet.
// Parsing is exact because input is constrained to at most two fractional
// digits, so no rounding ever occurs.
package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrAmountRequired is returned for empty or whitespace-only input.
	ErrAmountRequired = errors.New("amount is required")
	// ErrInvalidAmount is returned when the input is not a plain decimal
	// number with at most two fractional digits.
	ErrInvalidAmount = errors.New("amount must be a number with up to 2 decimals")
)

// ToMinorUnits parses a decimal amount with an optional leading sign and up
// to two fractional digits. Shorter fractions are right-padded, so "10.5"
// is 1050 cents. Scientific notation, thousands separators, and anything
// beyond two decimals are rejected rather than truncated.
func ToMinorUnits(input string) (int64, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return 0, ErrAmountRequired
	}

	negative := false
	switch raw[0] {
	case '+':
		raw = raw[1:]
	case '-':
		negative = true
		raw = raw[1:]
	}

	whole, frac, _ := strings.Cut(raw, ".")
	if whole == "" || len(frac) > 2 {
		return 0, ErrInvalidAmount
	}
	if !allDigits(whole) || !allDigits(frac) {
		return 0, ErrInvalidAmount
	}

	wv, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	var fv int64
	if frac != "" {
		padded := frac + strings.Repeat("0", 2-len(frac))
		fv, err = strconv.ParseInt(padded, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
	}

	// Guard wv*100 + fv against wrapping int64.
	const maxWhole = math.MaxInt64 / 100
	if wv > maxWhole || (wv == maxWhole && fv > math.MaxInt64%100) {
		return 0, ErrInvalidAmount
	}

	cents := wv*100 + fv
	if negative {
		cents = -cents
	}
	return cents, nil
}

// FromMinorUnits renders cents as a signed decimal with exactly two
// fractional digits. Zero renders as "0.00".
func FromMinorUnits(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
