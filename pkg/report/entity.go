package report

import "errors"

const (
	Filename    = "Career_Report.pdf"
	ContentType = "application/pdf"
	Title       = "Career Guidance & Skill Gap Report"
)

// Report — готовый PDF-файл отчёта.
type Report struct {
	Filename    string
	ContentType string
	Data        []byte
	Pages       int
}

// Layout holds the page geometry in points. Vertical positions are measured
// from the bottom edge of the page.
type Layout struct {
	TopMargin    float64 // header baseline and cursor reset after a page break, from the top
	BodyStart    float64 // first body line on page one, from the top
	LineHeight   float64
	BlockSpacing float64 // extra gap after every career block
	PageBreakY   float64 // low-water mark that triggers a new page
	ChartSize    float64
	ChartGap     float64 // gap below a chart
}

func DefaultLayout() Layout {
	return Layout{
		TopMargin:    50,
		BodyStart:    100,
		LineHeight:   20,
		BlockSpacing: 30,
		PageBreakY:   200,
		ChartSize:    200,
		ChartGap:     20,
	}
}

var (
	// ErrReportGeneration wraps chart rendering and PDF writing failures.
	ErrReportGeneration = errors.New("report generation failed")
	// ErrInvalidPayload is returned by ValidatePayload.
	ErrInvalidPayload = errors.New("invalid report payload")
)
