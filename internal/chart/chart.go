// Package chart renders the growth chart as a PNG: the WHO percentile band
// for the selected metric with the child's observed measurements drawn on
// top. Rendering is presentation-only; all data mapping happens in stats.
package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/golang/freetype"

	"babylog/internal/stats"
)

const (
	chartImageWidth  = 1024 // pixels
	chartImageHeight = 768  // pixels
	chartTextSize    = 16   // points

	marginLeft   = 70
	marginRight  = 30
	marginTop    = 50
	marginBottom = 50
)

var (
	colorGrid      = color.NRGBA{220, 220, 220, 255}
	colorReference = color.NRGBA{150, 150, 150, 255}
	colorMedian    = color.NRGBA{90, 90, 90, 255}
	colorSeries    = color.NRGBA{255, 107, 107, 255}
)

// GrowthChart describes one render: the reference band, the child's points
// and an optional title. FontPath points at a TTF for labels; when the font
// cannot be loaded the chart is still produced, just unlabeled.
type GrowthChart struct {
	Table    stats.PercentileTable
	Points   []stats.ChartPoint
	Title    string
	FontPath string
}

// Render draws the chart and returns it PNG-encoded
func (c *GrowthChart) Render() ([]byte, error) {
	// Initialise an all-white image.
	img := image.NewNRGBA(image.Rect(0, 0, chartImageWidth, chartImageHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	text := newTextWriter(img, c.FontPath)

	// Value axis covers the band with a little headroom, matching the
	// on-screen chart.
	minVal := math.Floor(minOf(c.Table.P3[:]) * 0.9)
	maxVal := math.Ceil(maxOf(c.Table.P97[:]) * 1.05)
	valRange := maxVal - minVal

	plotW := float64(chartImageWidth - marginLeft - marginRight)
	plotH := float64(chartImageHeight - marginTop - marginBottom)
	maxMonths := float64(stats.ReferenceMonths - 1)

	x := func(month float64) float64 {
		return marginLeft + month/maxMonths*plotW
	}
	y := func(val float64) float64 {
		return marginTop + plotH - (val-minVal)/valRange*plotH
	}

	// Gridlines and value labels.
	const yTicks = 5
	for i := 0; i <= yTicks; i++ {
		val := minVal + float64(i)*valRange/yTicks
		yPos := y(val)
		drawLine(img, marginLeft, yPos, float64(chartImageWidth-marginRight), yPos, colorGrid)
		text.write(10, int(yPos)+chartTextSize/2, fmt.Sprintf("%.0f", val))
	}
	for month := 0; month <= int(maxMonths); month += 2 {
		text.write(int(x(float64(month)))-5, chartImageHeight-marginBottom+25, fmt.Sprintf("%d", month))
	}

	// WHO reference curves, linearly interpolated between the monthly samples.
	drawCurve(img, c.Table.P3[:], x, y, colorReference)
	drawCurve(img, c.Table.P97[:], x, y, colorReference)
	drawCurve(img, c.Table.P50[:], x, y, colorMedian)

	// The child series connects the actual dated observations, which may be
	// irregular-interval.
	for i := 1; i < len(c.Points); i++ {
		p0, p1 := c.Points[i-1], c.Points[i]
		drawLine(img, x(p0.Month), y(p0.Value), x(p1.Month), y(p1.Value), colorSeries)
	}
	for _, p := range c.Points {
		drawDot(img, x(p.Month), y(p.Value), colorSeries)
	}

	text.write(marginLeft, 5+chartTextSize, c.Title)

	var buf bytes.Buffer
	if err := (&png.Encoder{CompressionLevel: png.BestCompression}).Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// drawCurve connects the monthly reference samples with line segments
func drawCurve(img *image.NRGBA, samples []float64, x, y func(float64) float64, col color.NRGBA) {
	for i := 1; i < len(samples); i++ {
		drawLine(img, x(float64(i-1)), y(samples[i-1]), x(float64(i)), y(samples[i]), col)
	}
}

// drawLine plots a segment by parametric stepping
func drawLine(img *image.NRGBA, x0, y0, x1, y1 float64, col color.NRGBA) {
	steps := math.Hypot(x1-x0, y1-y0)
	if steps < 1 {
		steps = 1
	}
	for i := 0.0; i <= steps; i++ {
		t := i / steps
		img.SetNRGBA(int(x0+(x1-x0)*t), int(y0+(y1-y0)*t), col)
	}
}

// drawDot marks an observation with a small filled circle
func drawDot(img *image.NRGBA, cx, cy float64, col color.NRGBA) {
	const r = 4
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(int(cx)+dx, int(cy)+dy, col)
			}
		}
	}
}

// textWriter draws labels with freetype. A missing or unparseable font
// disables labels rather than failing the render.
type textWriter struct {
	ctx *freetype.Context
}

func newTextWriter(img *image.NRGBA, fontPath string) *textWriter {
	fdata, err := os.ReadFile(fontPath)
	if err != nil {
		log.Printf("Loading chart font: %v (labels disabled)", err)
		return &textWriter{}
	}
	font, err := freetype.ParseFont(fdata)
	if err != nil {
		log.Printf("Parsing chart font: %v (labels disabled)", err)
		return &textWriter{}
	}
	ctx := freetype.NewContext()
	ctx.SetDst(img)
	ctx.SetDPI(72)
	ctx.SetClip(img.Bounds())
	ctx.SetFont(font)
	ctx.SetFontSize(chartTextSize)
	ctx.SetSrc(&image.Uniform{color.Black})
	return &textWriter{ctx: ctx}
}

func (t *textWriter) write(x, y int, text string) {
	if t.ctx == nil || text == "" {
		return
	}
	if _, err := t.ctx.DrawString(text, freetype.Pt(x, y)); err != nil {
		log.Printf("Writing chart text: %v", err)
	}
}

func minOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
