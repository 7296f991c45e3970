package demo

import (
	"strconv"
	"strings"
)

// formatGrouped renders a value with two decimals and comma-grouped
// thousands, e.g. 27360.9 -> "27,360.90".
func formatGrouped(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")
	var sb strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(intPart[i])
	}

	out := sb.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}
