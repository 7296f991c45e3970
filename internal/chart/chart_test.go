package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtrillion/minerva-site/internal/series"
)

func TestLine(t *testing.T) {
	pts := series.Points{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Value: 1.5},
		{Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Value: 2.25},
	}

	markup, err := Line(pts, "US Inflation Rate (YoY)", "Percent")
	require.NoError(t, err)

	assert.Contains(t, markup, "Plotly.newPlot")
	assert.Contains(t, markup, plotlyCDN)
	assert.Contains(t, markup, `"2024-01-01"`)
	assert.Contains(t, markup, `"tozeroy"`)
	assert.Contains(t, markup, "US Inflation Rate (YoY)")
}

func TestYearBars(t *testing.T) {
	markup, err := YearBars("2023", 2.9, "2024", 3.1, "Brazil Real GDP Growth", "Percent")
	require.NoError(t, err)

	assert.Contains(t, markup, `"bar"`)
	assert.Contains(t, markup, "3.1%")
	assert.Contains(t, markup, "2.9%")
	assert.Contains(t, markup, colorSecondary)
}

func TestFragmentIDsAreUnique(t *testing.T) {
	a, err := YearBars("2023", 1, "2024", 2, "t", "y")
	require.NoError(t, err)
	b, err := YearBars("2023", 1, "2024", 2, "t", "y")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
