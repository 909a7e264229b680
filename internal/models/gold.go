package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var goldAmountPattern = regexp.MustCompile(`^([0-9]+)([km]?)$`)

// ParseGoldAmount parses a user-supplied gold amount. Accepted formats:
// a non-negative integer with an optional k (thousand) or m (million)
// suffix, case-insensitive.
func ParseGoldAmount(raw string) (int64, error) {
	m := goldAmountPattern.FindStringSubmatch(strings.ToLower(raw))
	if m == nil {
		return 0, fmt.Errorf("%q is not a valid gold amount, accepted formats: <value>[km]", raw)
	}

	amount, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid gold amount: %w", raw, err)
	}

	switch m[2] {
	case "k":
		amount *= 1_000
	case "m":
		amount *= 1_000_000
	}

	return amount, nil
}
