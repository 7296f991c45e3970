package mcp

import (
	"context"
	"encoding/json"
	"fmt"
)

// IMF indicator tools, one per indicator category the resolver recognizes.
const (
	IMFToolGDP            = "imf_gdp"
	IMFToolInflation      = "imf_inflation"
	IMFToolUnemployment   = "imf_unemployment"
	IMFToolCurrentAccount = "imf_current_account"
)

// IndicatorSummary is the flat snapshot the IMF tools return: latest and
// previous annual values rather than a full series. Change stays a string;
// callers parse it and degrade on failure.
type IndicatorSummary struct {
	Title         string
	Country       string
	LatestValue   float64
	LatestYear    string
	PreviousValue float64
	PreviousYear  string
	Change        string
}

// IMFClient fetches cross-country summary indicators from the IMF MCP.
type IMFClient struct {
	client *Client
}

func NewIMFClient(client *Client) *IMFClient {
	return &IMFClient{client: client}
}

type imfPayload struct {
	Title         string `json:"title"`
	Country       string `json:"country"`
	LatestValue   scalar `json:"latest_value"`
	LatestYear    scalar `json:"latest_year"`
	PreviousValue scalar `json:"previous_value"`
	PreviousYear  scalar `json:"previous_year"`
	Change        scalar `json:"change"`
}

// Indicator fetches one indicator summary for a country.
func (c *IMFClient) Indicator(ctx context.Context, countryCode, tool string) (*IndicatorSummary, error) {
	raw, err := c.client.CallTool(ctx, tool, map[string]any{
		"country": countryCode,
	})
	if err != nil {
		return nil, err
	}

	var payload imfPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode indicator payload: %v", ErrProtocol, err)
	}

	if payload.LatestYear == "" && payload.PreviousYear == "" {
		return nil, fmt.Errorf("%w: indicator %s has no observations for %s", ErrNoData, tool, countryCode)
	}

	change := payload.Change.String()
	if change == "" {
		change = "0"
	}

	return &IndicatorSummary{
		Title:         payload.Title,
		Country:       payload.Country,
		LatestValue:   payload.LatestValue.FloatOr(0),
		LatestYear:    payload.LatestYear.String(),
		PreviousValue: payload.PreviousValue.FloatOr(0),
		PreviousYear:  payload.PreviousYear.String(),
		Change:        change,
	}, nil
}
