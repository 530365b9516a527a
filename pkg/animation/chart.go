package animation

import (
	"math"
	"strconv"
	"strings"
)

// Point is a chart coordinate. Data points use week/score units, projected
// points use pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DataPoints is the weekly fitness score plotted by the hero chart.
var DataPoints = []Point{
	{0, 35}, {1, 40}, {2, 43}, {3, 50}, {4, 48}, {5, 45},
	{6, 44}, {7, 39}, {8, 43}, {9, 35}, {10, 25},
}

const (
	Padding = 40.0
	// XDomain and YDomain are the data extents mapped onto the chart area.
	XDomain = 10.0
	YDomain = 50.0

	StartProgress = 0.2
	ProgressStep  = 0.01

	HorizontalLines = 6
	VerticalLines   = 11

	// DefaultWidth and DefaultHeight size the hero canvas (4:3).
	DefaultWidth  = 600.0
	DefaultHeight = 450.0
)

// MarkerColors cycle across data points by index.
var MarkerColors = []string{"#2563eb", "#a855f7", "#ec4899"}

// Marker is a projected data point.
type Marker struct {
	Point
	Color string `json:"color"`
}

// Segment is a straight grid line.
type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Frame is everything needed to draw one animation step as SVG.
type Frame struct {
	Width      float64   `json:"width"`
	Height     float64   `json:"height"`
	Progress   float64   `json:"progress"`
	Visible    int       `json:"visible"`
	Markers    []Marker  `json:"markers"`
	Line       string    `json:"line"`
	Area       string    `json:"area"`
	Horizontal []Segment `json:"horizontal"`
	Vertical   []Segment `json:"vertical"`
	Done       bool      `json:"done"`
}

func clamp(progress float64) float64 {
	if progress < StartProgress || math.IsNaN(progress) {
		return StartProgress
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Step returns the progress of the frame after progress.
func Step(progress float64) float64 {
	progress = clamp(progress)
	if progress < 1 {
		progress += ProgressStep
	}
	return math.Min(progress, 1)
}

// VisiblePoints is the number of data points revealed at progress.
func VisiblePoints(progress float64) int {
	return int(math.Floor(float64(len(DataPoints)) * clamp(progress)))
}

// Project maps a data point into a width x height canvas.
func Project(p Point, width, height float64) Point {
	chartWidth := width - Padding*2
	chartHeight := height - Padding*2
	return Point{
		X: Padding + (chartWidth/XDomain)*p.X,
		Y: Padding + chartHeight - (chartHeight/YDomain)*p.Y,
	}
}

// Layout computes the frame at progress for a width x height canvas.
func Layout(width, height, progress float64) Frame {
	progress = clamp(progress)
	visible := VisiblePoints(progress)
	frame := Frame{
		Width:      width,
		Height:     height,
		Progress:   progress,
		Visible:    visible,
		Horizontal: grid(width, height, true),
		Vertical:   grid(width, height, false),
		Done:       progress >= 1,
	}

	projected := make([]Point, visible)
	frame.Markers = make([]Marker, visible)
	for i := 0; i < visible; i++ {
		projected[i] = Project(DataPoints[i], width, height)
		frame.Markers[i] = Marker{Point: projected[i], Color: MarkerColors[i%len(MarkerColors)]}
	}

	if visible > 1 {
		frame.Line = linePath(projected)
		frame.Area = areaPath(frame.Line, projected[visible-1], height)
	}
	return frame
}

// linePath joins points with cubic curves whose control points sit a third
// of the way along each segment at the segment end heights.
func linePath(points []Point) string {
	var b strings.Builder
	b.WriteString("M")
	writePoint(&b, points[0])
	for i := 0; i < len(points)-1; i++ {
		current, next := points[i], points[i+1]
		dx := (next.X - current.X) / 3
		b.WriteString(" C")
		writePoint(&b, Point{current.X + dx, current.Y})
		b.WriteString(" ")
		writePoint(&b, Point{next.X - dx, next.Y})
		b.WriteString(" ")
		writePoint(&b, next)
	}
	return b.String()
}

func areaPath(line string, last Point, height float64) string {
	var b strings.Builder
	b.WriteString(line)
	b.WriteString(" L")
	writePoint(&b, Point{last.X, height - Padding})
	b.WriteString(" L")
	writePoint(&b, Point{Padding, height - Padding})
	b.WriteString(" Z")
	return b.String()
}

func grid(width, height float64, horizontal bool) []Segment {
	chartWidth := width - Padding*2
	chartHeight := height - Padding*2
	if horizontal {
		out := make([]Segment, HorizontalLines)
		for i := range out {
			y := Padding + (chartHeight/float64(HorizontalLines-1))*float64(i)
			out[i] = Segment{From: Point{Padding, y}, To: Point{width - Padding, y}}
		}
		return out
	}
	out := make([]Segment, VerticalLines)
	for i := range out {
		x := Padding + (chartWidth/float64(VerticalLines-1))*float64(i)
		out[i] = Segment{From: Point{x, Padding}, To: Point{x, height - Padding}}
	}
	return out
}

func writePoint(b *strings.Builder, p Point) {
	b.WriteString(formatFloat(p.X))
	b.WriteByte(',')
	b.WriteString(formatFloat(p.Y))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
