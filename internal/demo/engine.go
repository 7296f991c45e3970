// Package demo implements the showcase client: it resolves a free-text
// query to one of the two data services, fetches and transforms the result,
// and composes the chart and summary attributed to a persona.
package demo

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/xtrillion/minerva-site/apimodels"
	"github.com/xtrillion/minerva-site/internal/chart"
	"github.com/xtrillion/minerva-site/internal/mcp"
	"github.com/xtrillion/minerva-site/internal/metrics"
	"github.com/xtrillion/minerva-site/internal/series"
)

// Responder personas. Flavor only: each path is attributed to a fixed name.
const (
	PersonaFRED     = "Fred"
	PersonaIMF      = "Isla"
	PersonaFallback = "Grace"
)

const helpText = `I can help you with US economic data from FRED! Try asking about:

• **Inflation** - Consumer Price Index (CPI)
• **Unemployment** - US unemployment rate
• **GDP** - Gross Domestic Product
• **Fed Funds Rate** - Federal Reserve interest rate
• **Treasury Rates** - 10-year yields

Just ask something like "Show me US inflation" or "What's the unemployment rate?"`

// Engine answers demo queries. Stateless per request: one synchronous
// upstream call per invocation, no retries, no caching.
type Engine struct {
	fred *mcp.FREDClient
	imf  *mcp.IMFClient
}

func NewEngine(fred *mcp.FREDClient, imf *mcp.IMFClient) *Engine {
	return &Engine{fred: fred, imf: imf}
}

// Respond resolves the query and produces a response. Every failure class
// degrades to a valid response with the apology text and no chart; nothing
// here is fatal.
func (e *Engine) Respond(ctx context.Context, query string) *apimodels.DemoResponse {
	res := Resolve(query)
	label := sourceLabel(res.Source)

	start := time.Now()
	defer func() {
		metrics.DemoDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
	}()
	metrics.DemoQueries.WithLabelValues(label).Inc()

	slog.Info("handling demo query", "query", query, "source", label)

	switch res.Source {
	case SourceIMF:
		return e.respondIMF(ctx, res)
	case SourceFRED:
		return e.respondFRED(ctx, res)
	default:
		return &apimodels.DemoResponse{Text: helpText, Responder: PersonaFallback}
	}
}

func (e *Engine) respondIMF(ctx context.Context, res Resolution) *apimodels.DemoResponse {
	summary, err := e.imf.Indicator(ctx, res.CountryCode, res.Tool)
	if err != nil {
		slog.Warn("IMF fetch failed", "country", res.CountryCode, "tool", res.Tool, "error", err)
		metrics.DemoFailures.WithLabelValues(sourceLabel(SourceIMF)).Inc()
		return &apimodels.DemoResponse{
			Text:      fmt.Sprintf("I couldn't retrieve %s data for %s. Please try the full Minerva app.", res.Title, res.CountryName),
			Responder: PersonaIMF,
		}
	}

	direction, glyph := changeDirection(summary.Change)
	slog.Debug("IMF indicator fetched", "country", summary.Country, "direction", direction)

	text := fmt.Sprintf(`Here's **%s's %s** from IMF:

**%s:** %.1f%%  %s
**%s:** %.1f%%

Year-over-year change: **%s%%**

*Source: IMF World Economic Outlook*`,
		res.CountryName, res.Title,
		summary.LatestYear, summary.LatestValue, glyph,
		summary.PreviousYear, summary.PreviousValue,
		summary.Change)

	markup, err := chart.YearBars(
		summary.PreviousYear, summary.PreviousValue,
		summary.LatestYear, summary.LatestValue,
		fmt.Sprintf("%s %s", res.CountryName, res.Title), res.YLabel,
	)
	if err != nil {
		slog.Error("year-comparison chart failed", "error", err)
		markup = ""
	}

	return &apimodels.DemoResponse{Text: text, Chart: markup, Responder: PersonaIMF}
}

func (e *Engine) respondFRED(ctx context.Context, res Resolution) *apimodels.DemoResponse {
	apology := &apimodels.DemoResponse{
		Text:      fmt.Sprintf("I tried to fetch %s data but couldn't retrieve it. Please try again.", res.Title),
		Responder: PersonaFRED,
	}

	pts, info, err := e.fred.Series(ctx, res.SeriesID)
	if err != nil {
		slog.Warn("FRED fetch failed", "series_id", res.SeriesID, "error", err)
		metrics.DemoFailures.WithLabelValues(sourceLabel(SourceFRED)).Inc()
		return apology
	}

	title := res.Title
	yLabel := res.YLabel
	if res.Transform == TransformYoY {
		pts = series.YearOverYear(pts)
		if len(pts) == 0 {
			slog.Warn("series too short for year-over-year transform", "series_id", res.SeriesID)
			metrics.DemoFailures.WithLabelValues(sourceLabel(SourceFRED)).Inc()
			return apology
		}
	} else {
		if info.Title != "" {
			title = info.Title
		}
		if info.Units != "" {
			yLabel = info.Units
		}
	}

	latest, _ := pts.Latest()
	latestDate := latest.Date.Format("January 2006")

	var text string
	if res.Transform == TransformYoY {
		text = fmt.Sprintf(`Here's the latest **%s** data from FRED:

**Current Inflation (%s):** %.1f%%

US inflation is currently running at **%.1f%%** year-over-year, based on the Consumer Price Index.

The chart below shows the inflation trend over the past 10 years.`,
			title, latestDate, latest.Value, abs(latest.Value))
	} else {
		text = fmt.Sprintf(`Here's the latest **%s** data from FRED:

**Latest Reading (%s):** %s %s

The chart below shows the historical trend over the past 10 years.`,
			title, latestDate, formatGrouped(latest.Value), yLabel)
	}

	markup, err := chart.Line(pts, title, yLabel)
	if err != nil {
		slog.Error("line chart failed", "error", err)
		markup = ""
	}

	return &apimodels.DemoResponse{Text: text, Chart: markup, Responder: PersonaFRED}
}

// changeDirection classifies the signed change field. An unparsable change
// degrades to a neutral label with no glyph rather than failing the response.
func changeDirection(change string) (string, string) {
	v, err := strconv.ParseFloat(change, 64)
	if err != nil {
		return "changed", ""
	}
	switch {
	case v > 0:
		return "up", "📈"
	case v < 0:
		return "down", "📉"
	default:
		return "unchanged", "➡️"
	}
}

func sourceLabel(s Source) string {
	switch s {
	case SourceFRED:
		return "fred"
	case SourceIMF:
		return "imf"
	default:
		return "none"
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
