// Package series holds the time-series types shared by the demo pipeline
// and the transforms applied to them before charting.
package series

import (
	"sort"
	"time"
)

// YoYLag is the number of points between a value and its year-ago
// counterpart. Fixed at 12: the transform assumes monthly, gap-free data.
const YoYLag = 12

// Point is a single dated observation.
type Point struct {
	Date  time.Time
	Value float64
}

// Points is an observation sequence, ascending by date once sorted.
type Points []Point

// SortByDate orders the points ascending by date in place.
func (p Points) SortByDate() {
	sort.Slice(p, func(i, j int) bool {
		return p[i].Date.Before(p[j].Date)
	})
}

// Latest returns the last point of an ascending sequence.
func (p Points) Latest() (Point, bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[len(p)-1], true
}

// Values returns the raw value column.
func (p Points) Values() []float64 {
	out := make([]float64, len(p))
	for i, pt := range p {
		out[i] = pt.Value
	}
	return out
}

// YearOverYear replaces each value with its percent change against the
// point YoYLag positions earlier and drops the leading points that have no
// year-ago counterpart. The input must be sorted ascending and sampled
// monthly without gaps; irregular series are a caller error.
func YearOverYear(p Points) Points {
	if len(p) <= YoYLag {
		return nil
	}
	out := make(Points, 0, len(p)-YoYLag)
	for i := YoYLag; i < len(p); i++ {
		base := p[i-YoYLag].Value
		out = append(out, Point{
			Date:  p[i].Date,
			Value: (p[i].Value - base) / base * 100,
		})
	}
	return out
}
