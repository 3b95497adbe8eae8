package dashboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/bissquit/auctionhub/internal/domain"
)

// Point is an SVG coordinate.
type Point struct {
	X, Y float64
}

// AreaSeries is one filled line of an area chart.
type AreaSeries struct {
	Name   string
	Color  string
	Points []Point
	Line   string
	Area   string
}

// AxisLabel is a category label under the x axis.
type AxisLabel struct {
	Text string
	X    float64
}

// AreaChart is the geometry of the activity chart.
type AreaChart struct {
	Width, Height float64
	Padding       float64
	Baseline      float64
	Max           int64
	Labels        []AxisLabel
	Series        []AreaSeries
}

var activitySeries = []struct {
	name  string
	color string
	value func(domain.ActivityPoint) int64
}{
	{"Sales", "#8884d8", func(p domain.ActivityPoint) int64 { return p.Sales }},
	{"Orders", "#82ca9d", func(p domain.ActivityPoint) int64 { return p.Orders }},
	{"Visitors", "#ffc658", func(p domain.ActivityPoint) int64 { return p.Visitors }},
}

// NewAreaChart scales points into a width x height box with padding on
// every side. All series share one y scale.
func NewAreaChart(points []domain.ActivityPoint, width, height, padding float64) AreaChart {
	chart := AreaChart{
		Width:    width,
		Height:   height,
		Padding:  padding,
		Baseline: height - padding,
	}

	for _, p := range points {
		for _, s := range activitySeries {
			if v := s.value(p); v > chart.Max {
				chart.Max = v
			}
		}
	}
	scaleMax := float64(chart.Max)
	if scaleMax == 0 {
		scaleMax = 1
	}

	innerW := width - 2*padding
	innerH := height - 2*padding
	x := func(i int) float64 {
		if len(points) == 1 {
			return padding + innerW/2
		}
		return padding + float64(i)*innerW/float64(len(points)-1)
	}

	for i, p := range points {
		chart.Labels = append(chart.Labels, AxisLabel{Text: p.Date, X: x(i)})
	}

	for _, s := range activitySeries {
		series := AreaSeries{Name: s.name, Color: s.color}
		for i, p := range points {
			y := chart.Baseline - float64(s.value(p))/scaleMax*innerH
			series.Points = append(series.Points, Point{X: x(i), Y: y})
		}
		series.Line = linePath(series.Points)
		series.Area = areaPath(series.Points, chart.Baseline)
		chart.Series = append(chart.Series, series)
	}

	return chart
}

func linePath(points []Point) string {
	var b strings.Builder
	for i, p := range points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s%.2f,%.2f", cmd, p.X, p.Y)
	}
	return b.String()
}

func areaPath(points []Point, baseline float64) string {
	if len(points) == 0 {
		return ""
	}
	first, last := points[0], points[len(points)-1]
	return fmt.Sprintf("%s L%.2f,%.2f L%.2f,%.2f Z", linePath(points), last.X, baseline, first.X, baseline)
}

// DonutSegment is one slice of the traffic source chart. Angles are in
// degrees clockwise from twelve o'clock; the drawn arc leaves half the
// padding angle free on each side.
type DonutSegment struct {
	Name       string
	Color      string
	Percent    float64
	StartAngle float64
	EndAngle   float64
	Label      string
	LabelPos   Point
	Path       string
}

// Donut is the geometry of the traffic source chart.
type Donut struct {
	Size        float64
	InnerRadius float64
	OuterRadius float64
	Segments    []DonutSegment
}

// NewDonut lays out sources around a circle of the given size. Segments
// take a share of 360 degrees proportional to their value.
func NewDonut(sources []domain.TrafficSource, size, inner, outer, paddingAngle float64) Donut {
	d := Donut{Size: size, InnerRadius: inner, OuterRadius: outer}

	var total float64
	for _, s := range sources {
		total += s.Value
	}
	if total <= 0 {
		return d
	}

	c := size / 2
	angle := 0.0
	for _, s := range sources {
		share := s.Value / total
		sweep := share * 360
		seg := DonutSegment{
			Name:       s.Name,
			Color:      s.Color,
			Percent:    share * 100,
			StartAngle: angle,
			EndAngle:   angle + sweep,
			Label:      fmt.Sprintf("%s: %.0f%%", s.Name, share*100),
		}

		pad := math.Min(paddingAngle, sweep) / 2
		seg.Path = arcPath(c, c, inner, outer, seg.StartAngle+pad, seg.EndAngle-pad)
		seg.LabelPos = polar(c, c, outer+14, angle+sweep/2)
		d.Segments = append(d.Segments, seg)
		angle += sweep
	}
	return d
}

func polar(cx, cy, r, deg float64) Point {
	rad := (deg - 90) * math.Pi / 180
	return Point{X: cx + r*math.Cos(rad), Y: cy + r*math.Sin(rad)}
}

func arcPath(cx, cy, inner, outer, start, end float64) string {
	if end-start >= 360 {
		end = start + 359.99
	}
	large := 0
	if end-start > 180 {
		large = 1
	}
	os, oe := polar(cx, cy, outer, start), polar(cx, cy, outer, end)
	is, ie := polar(cx, cy, inner, end), polar(cx, cy, inner, start)
	return fmt.Sprintf("M%.2f,%.2f A%.2f,%.2f 0 %d 1 %.2f,%.2f L%.2f,%.2f A%.2f,%.2f 0 %d 0 %.2f,%.2f Z",
		os.X, os.Y, outer, outer, large, oe.X, oe.Y,
		is.X, is.Y, inner, inner, large, ie.X, ie.Y)
}
