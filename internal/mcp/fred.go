package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/xtrillion/minerva-site/internal/series"
)

const fredSeriesTool = "fred_series_timeseries"

// SeriesInfo is the descriptive metadata FRED returns alongside a series.
type SeriesInfo struct {
	Title     string
	Units     string
	Frequency string
}

// FREDClient fetches domestic time series from the FRED MCP.
type FREDClient struct {
	client        *Client
	lookbackYears int
	now           func() time.Time
}

func NewFREDClient(client *Client, lookbackYears int) *FREDClient {
	return &FREDClient{client: client, lookbackYears: lookbackYears, now: time.Now}
}

type fredPayload struct {
	Title     string `json:"title"`
	Units     string `json:"units"`
	Frequency string `json:"frequency"`
	ChartData []struct {
		Date  string `json:"date"`
		Value scalar `json:"value"`
	} `json:"chart_data"`
}

// Series fetches one series from Jan 1 of (now - lookback years) onward.
// Rows whose value does not parse as a number are dropped; FRED marks
// missing observations with ".".
func (f *FREDClient) Series(ctx context.Context, seriesID string) (series.Points, SeriesInfo, error) {
	startDate := fmt.Sprintf("%d-01-01", f.now().Year()-f.lookbackYears)

	raw, err := f.client.CallTool(ctx, fredSeriesTool, map[string]any{
		"series_id":  seriesID,
		"start_date": startDate,
	})
	if err != nil {
		return nil, SeriesInfo{}, err
	}

	var payload fredPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, SeriesInfo{}, fmt.Errorf("%w: decode series payload: %v", ErrProtocol, err)
	}

	info := SeriesInfo{Title: payload.Title, Units: payload.Units, Frequency: payload.Frequency}

	pts := make(series.Points, 0, len(payload.ChartData))
	for _, row := range payload.ChartData {
		date, err := time.Parse("2006-01-02", row.Date)
		if err != nil {
			slog.Debug("dropping row with unparsable date", "series_id", seriesID, "date", row.Date)
			continue
		}
		value, err := row.Value.Float()
		if err != nil {
			continue
		}
		pts = append(pts, series.Point{Date: date, Value: value})
	}

	if len(pts) == 0 {
		return nil, info, fmt.Errorf("%w: series %s is empty", ErrNoData, seriesID)
	}

	pts.SortByDate()
	return pts, info, nil
}
