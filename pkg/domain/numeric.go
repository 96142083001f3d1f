package domain

import (
	"math"
	"regexp"
	"strconv"
)

var (
	nonNumeric    = regexp.MustCompile(`[^0-9.\-]`)
	numericPrefix = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?`)
)

// CoerceNumber parses v permissively: non-numeric characters are stripped
// before parsing, and anything that still fails to yield a finite number
// resolves to 0. "$45.00 deposit" coerces to 45. Aggregations over coerced
// fields therefore never see NaN or Inf.
func CoerceNumber(v string) float64 {
	n, _ := parseLoose(v)
	return n
}

// ParsesFinite reports whether v contains a parsable finite number after
// permissive cleanup. Used to gate fields where a silent 0 would hide bad
// input, such as a sale amount.
func ParsesFinite(v string) bool {
	_, ok := parseLoose(v)
	return ok
}

func parseLoose(v string) (float64, bool) {
	cleaned := nonNumeric.ReplaceAllString(v, "")
	if cleaned == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		// Fall back to the longest leading numeric token, so stray
		// separators ("1.2.3") degrade instead of zeroing out.
		token := numericPrefix.FindString(cleaned)
		if token == "" {
			return 0, false
		}
		n, err = strconv.ParseFloat(token, 64)
		if err != nil {
			return 0, false
		}
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
