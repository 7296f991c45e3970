package mcp

import (
	"encoding/json"
	"strconv"
	"strings"
)

// scalar decodes a JSON field that arrives as either a string or a number,
// which the upstream tools do inconsistently.
type scalar string

func (s *scalar) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = scalar(str)
		return nil
	}
	*s = scalar(string(b))
	return nil
}

func (s scalar) String() string { return string(s) }

func (s scalar) Float() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(string(s)), 64)
}

// FloatOr returns the parsed value or the fallback when the field is
// missing or not numeric.
func (s scalar) FloatOr(fallback float64) float64 {
	v, err := s.Float()
	if err != nil {
		return fallback
	}
	return v
}
