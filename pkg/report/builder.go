package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/artem13815/skillgap/pkg/analysis"
)

// Builder renders analysis results into a multi-page letter-size PDF.
type Builder struct {
	layout Layout
	charts ChartRenderer
}

func NewBuilder(layout Layout, charts ChartRenderer) *Builder {
	if charts == nil {
		charts = PieChart{}
	}
	return &Builder{layout: layout, charts: charts}
}

// Build draws one block per result, in order. Any chart or PDF error aborts
// the whole report; no partial document is returned.
func (b *Builder) Build(results []analysis.Result) (Report, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle(Title, true)
	_, height := doc.GetPageSize()

	doc.AddPage()
	doc.SetFont("Helvetica", "B", 16)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.Text(50, b.layout.TopMargin, tr(Title))
	doc.SetFont("Helvetica", "", 12)

	cur := &cursor{
		doc:    doc,
		tr:     tr,
		layout: b.layout,
		height: height,
		y:      height - b.layout.BodyStart,
	}
	for i, r := range results {
		if err := b.block(cur, i, r); err != nil {
			return Report{}, err
		}
	}

	if err := doc.Error(); err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrReportGeneration, err)
	}
	pages := doc.PageCount()
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return Report{}, fmt.Errorf("%w: write pdf: %v", ErrReportGeneration, err)
	}
	return Report{
		Filename:    Filename,
		ContentType: ContentType,
		Data:        buf.Bytes(),
		Pages:       pages,
	}, nil
}

func (b *Builder) block(cur *cursor, i int, r analysis.Result) error {
	cur.line(50, "Career: "+r.Career)
	cur.line(70, "Skill Match %: "+formatPercent(r.MatchPercent)+"%")
	cur.line(70, "Matched Skills: "+joinOrNone(r.Matched))
	cur.line(70, "Missing Skills: "+joinOrNone(r.Missing))

	if len(r.Matched)+len(r.Missing) > 0 {
		png, err := b.charts.Render(r.Career, len(r.Matched), len(r.Missing))
		if err != nil {
			return fmt.Errorf("%w: chart for %q: %v", ErrReportGeneration, r.Career, err)
		}
		cur.image(fmt.Sprintf("chart-%d", i), 70, png)
	}

	if len(r.Courses) > 0 {
		cur.line(70, "Recommended Courses:")
		for _, c := range r.Courses {
			cur.line(90, "- "+c)
		}
	}
	cur.endBlock()
	return nil
}

// cursor tracks the vertical position (from the page bottom) and opens a new
// page lazily, so a break after the last block leaves no blank page.
type cursor struct {
	doc     *fpdf.Fpdf
	tr      func(string) string
	layout  Layout
	height  float64
	y       float64
	pending bool
}

func (c *cursor) ensurePage() {
	if !c.pending {
		return
	}
	c.doc.AddPage()
	c.doc.SetFont("Helvetica", "", 12)
	c.y = c.height - c.layout.TopMargin
	c.pending = false
}

func (c *cursor) line(x float64, s string) {
	c.ensurePage()
	c.doc.Text(x, c.height-c.y, c.tr(s))
	c.y -= c.layout.LineHeight
}

func (c *cursor) image(name string, x float64, png []byte) {
	c.ensurePage()
	opt := fpdf.ImageOptions{ImageType: "PNG"}
	c.doc.RegisterImageOptionsReader(name, opt, bytes.NewReader(png))
	c.doc.ImageOptions(name, x, c.height-c.y, c.layout.ChartSize, c.layout.ChartSize, false, opt, 0, "")
	c.y -= c.layout.ChartSize + c.layout.ChartGap
}

func (c *cursor) endBlock() {
	c.y -= c.layout.BlockSpacing
	if c.y < c.layout.PageBreakY {
		c.pending = true
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
