package report

import (
	"bytes"
	"errors"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartRenderer renders a matched/missing chart to PNG bytes.
type ChartRenderer interface {
	Render(title string, matched, missing int) ([]byte, error)
}

var (
	matchedColor = drawing.ColorFromHex("00d8ff")
	missingColor = drawing.ColorFromHex("ff4d4d")
)

// PieChart draws a two-slice pie with percentage labels.
type PieChart struct {
	Size int // pixels
}

func (p PieChart) Render(title string, matched, missing int) ([]byte, error) {
	total := matched + missing
	if total <= 0 {
		return nil, errors.New("pie chart needs at least one skill")
	}
	var values []chart.Value
	add := func(label string, n int, color drawing.Color) {
		if n <= 0 {
			return
		}
		values = append(values, chart.Value{
			Value: float64(n),
			Label: fmt.Sprintf("%s %.1f%%", label, 100*float64(n)/float64(total)),
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
			},
		})
	}
	add("Matched", matched, matchedColor)
	add("Missing", missing, missingColor)

	size := p.Size
	if size <= 0 {
		size = 512
	}
	pie := chart.PieChart{
		Title:  title,
		Width:  size,
		Height: size,
		Values: values,
	}
	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render pie chart: %w", err)
	}
	return buf.Bytes(), nil
}
