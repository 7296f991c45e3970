package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatGrouped(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{4.1, "4.10"},
		{999.999, "1,000.00"},
		{27360.9, "27,360.90"},
		{29374914.2, "29,374,914.20"},
		{-1234.5, "-1,234.50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatGrouped(tt.in), "input %v", tt.in)
	}
}

func TestChangeDirection(t *testing.T) {
	tests := []struct {
		change string
		label  string
		glyph  string
	}{
		{"0.2", "up", "📈"},
		{"-1.3", "down", "📉"},
		{"0", "unchanged", "➡️"},
		{"n/a", "changed", ""},
		{"", "changed", ""},
	}

	for _, tt := range tests {
		label, glyph := changeDirection(tt.change)
		assert.Equal(t, tt.label, label, "change %q", tt.change)
		assert.Equal(t, tt.glyph, glyph, "change %q", tt.change)
	}
}
