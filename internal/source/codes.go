package source

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RegionCode normalizes a region code cell to the 5-digit zero-padded scheme
// used by the population table. It reports false for empty or non-numeric cells.
func RegionCode(raw string) (string, bool) {
	n, ok := parseCode(raw)
	if !ok || n != math.Trunc(n) {
		return "", false
	}
	return fmt.Sprintf("%05d", int64(n)), true
}

// PublicRegionCode converts a 10-digit legal-dong code from the public facility
// table into a region code: floor(code / 100000), zero-padded to 5 digits.
func PublicRegionCode(raw string) (string, bool) {
	n, ok := parseCode(raw)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%05d", int64(math.Floor(n/100000))), true
}

func parseCode(raw string) (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(n), n >= 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return f, true
}

// parseNumber reads a numeric cell, tolerating thousands separators.
func parseNumber(raw string) (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
