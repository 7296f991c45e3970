package mcp

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesDecodesAndFilters(t *testing.T) {
	// Values arrive as strings; "." is FRED's missing-observation marker.
	srv, last := toolServer(t, http.StatusOK, envelopeBody(t, map[string]any{
		"title":     "Consumer Price Index for All Urban Consumers",
		"units":     "Index 1982-1984=100",
		"frequency": "Monthly",
		"chart_data": []map[string]any{
			{"date": "2024-02-01", "value": "310.3"},
			{"date": "2024-01-01", "value": 309.7},
			{"date": "2024-03-01", "value": "."},
			{"date": "garbage", "value": "1"},
		},
	}))

	client, err := NewClient(srv.URL, 5*time.Second)
	require.NoError(t, err)
	fred := NewFREDClient(client, 10)
	fred.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }

	pts, info, err := fred.Series(context.Background(), "CPIAUCSL")
	require.NoError(t, err)

	assert.Equal(t, "2015-01-01", last.Arguments["start_date"])
	assert.Equal(t, "CPIAUCSL", last.Arguments["series_id"])
	assert.Equal(t, "Consumer Price Index for All Urban Consumers", info.Title)
	assert.Equal(t, "Index 1982-1984=100", info.Units)

	// Missing value and bad date dropped, remainder sorted ascending.
	require.Len(t, pts, 2)
	assert.Equal(t, 309.7, pts[0].Value)
	assert.Equal(t, 310.3, pts[1].Value)
	assert.True(t, pts[0].Date.Before(pts[1].Date))
}

func TestSeriesEmpty(t *testing.T) {
	srv, _ := toolServer(t, http.StatusOK, envelopeBody(t, map[string]any{
		"title":      "Gross Domestic Product",
		"chart_data": []map[string]any{},
	}))

	client, err := NewClient(srv.URL, 5*time.Second)
	require.NoError(t, err)

	_, _, err = NewFREDClient(client, 10).Series(context.Background(), "GDP")
	assert.ErrorIs(t, err, ErrNoData)
}
