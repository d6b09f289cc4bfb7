// Package formatting converts byte sizes between their numeric and
// human-readable forms, as used by upload limits in configuration and pages.
package formatting

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var units = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

var sizePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([A-Za-z]*)$`)

// FormatBytes renders n with base-1024 units and the given number of decimal
// places. Negative precision is treated as zero.
func FormatBytes(n int64, precision int) string {
	if n <= 0 {
		return "0 B"
	}
	precision = max(precision, 0)

	exp := min(int(math.Log(float64(n))/math.Log(1024)), len(units)-1)
	size := float64(n) / math.Pow(1024, float64(exp))

	return strconv.FormatFloat(size, 'f', precision, 64) + " " + units[exp]
}

// ParseBytes reads sizes such as "50MB", "1.5 gb", or "2048". Units are
// case-insensitive and a bare number is a byte count.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty byte size string")
	}

	m := sizePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid byte size: %q", s)
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size number: %w", err)
	}

	if m[2] == "" {
		return int64(value), nil
	}

	exp := slices.Index(units, strings.ToUpper(m[2]))
	if exp < 0 {
		return 0, fmt.Errorf("unknown byte size unit: %q", m[2])
	}

	return int64(value * math.Pow(1024, float64(exp))), nil
}
