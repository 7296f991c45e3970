// Package chart renders self-contained Plotly HTML fragments for the demo
// widget: a filled line chart for time series and a two-bar year comparison
// for indicator snapshots.
package chart

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/google/uuid"

	"github.com/xtrillion/minerva-site/internal/series"
)

const (
	plotlyCDN = "https://cdn.plot.ly/plotly-2.35.2.min.js"

	colorPrimary   = "#667eea"
	colorSecondary = "#764ba2"
)

var fragmentTmpl = template.Must(template.New("fragment").Parse(`<div id="{{.ID}}" class="demo-chart"></div>
<script src="{{.CDN}}" charset="utf-8"></script>
<script>Plotly.newPlot("{{.ID}}", {{.Data}}, {{.Layout}}, {"displayModeBar": false, "responsive": true});</script>
`))

type fragment struct {
	ID     string
	CDN    string
	Data   template.JS
	Layout template.JS
}

// Line renders a filled line chart for an ascending time series.
func Line(pts series.Points, title, yLabel string) (string, error) {
	x := make([]string, len(pts))
	y := make([]float64, len(pts))
	for i, p := range pts {
		x[i] = p.Date.Format("2006-01-02")
		y[i] = p.Value
	}

	data := []map[string]any{{
		"x":         x,
		"y":         y,
		"type":      "scatter",
		"mode":      "lines",
		"line":      map[string]any{"color": colorPrimary, "width": 2},
		"fill":      "tozeroy",
		"fillcolor": "rgba(102, 126, 234, 0.1)",
	}}

	return render(data, layout(title, yLabel, 350))
}

// YearBars renders the previous-vs-latest year comparison used on the
// international path. Value labels sit outside the bars.
func YearBars(prevLabel string, prevValue float64, latestLabel string, latestValue float64, title, yLabel string) (string, error) {
	data := []map[string]any{{
		"x":            []string{prevLabel, latestLabel},
		"y":            []float64{prevValue, latestValue},
		"type":         "bar",
		"marker":       map[string]any{"color": []string{colorPrimary, colorSecondary}},
		"text":         []string{fmt.Sprintf("%.1f%%", prevValue), fmt.Sprintf("%.1f%%", latestValue)},
		"textposition": "outside",
	}}

	return render(data, layout(title, yLabel, 300))
}

func layout(title, yLabel string, height int) map[string]any {
	return map[string]any{
		"title": map[string]any{
			"text": title,
			"font": map[string]any{"size": 16, "color": "#fff"},
		},
		"xaxis": map[string]any{
			"title":     "",
			"gridcolor": "rgba(255,255,255,0.1)",
			"tickfont":  map[string]any{"color": "#888"},
		},
		"yaxis": map[string]any{
			"title":     map[string]any{"text": yLabel, "font": map[string]any{"color": "#888"}},
			"gridcolor": "rgba(255,255,255,0.1)",
			"tickfont":  map[string]any{"color": "#888"},
		},
		"plot_bgcolor":  "rgba(0,0,0,0)",
		"paper_bgcolor": "rgba(0,0,0,0)",
		"margin":        map[string]any{"l": 50, "r": 20, "t": 50, "b": 30},
		"height":        height,
	}
}

func render(data []map[string]any, lay map[string]any) (string, error) {
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal chart data: %w", err)
	}
	layoutJSON, err := json.Marshal(lay)
	if err != nil {
		return "", fmt.Errorf("marshal chart layout: %w", err)
	}

	var sb strings.Builder
	err = fragmentTmpl.Execute(&sb, fragment{
		ID:     "chart-" + uuid.NewString(),
		CDN:    plotlyCDN,
		Data:   template.JS(dataJSON),
		Layout: template.JS(layoutJSON),
	})
	if err != nil {
		return "", fmt.Errorf("render chart fragment: %w", err)
	}
	return sb.String(), nil
}
