package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/skillgap/pkg/analysis"
	"github.com/artem13815/skillgap/pkg/catalog"
)

type countingCharts struct {
	calls int
	err   error
}

func (c *countingCharts) Render(title string, matched, missing int) ([]byte, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return PieChart{Size: 128}.Render(title, matched, missing)
}

func chartResult(name string) analysis.Result {
	return analysis.Result{
		Career:       name,
		Matched:      []string{"Python"},
		Missing:      []string{"SQL", "Excel"},
		MatchPercent: 33.33,
		Courses:      []string{},
	}
}

func pageCount(t *testing.T, data []byte) int {
	t.Helper()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return r.NumPage()
}

func TestBuild_EmptyResults(t *testing.T) {
	rep, err := NewBuilder(DefaultLayout(), nil).Build(nil)
	require.NoError(t, err)

	assert.Equal(t, "Career_Report.pdf", rep.Filename)
	assert.Equal(t, "application/pdf", rep.ContentType)
	assert.Equal(t, 1, rep.Pages)
	assert.True(t, bytes.HasPrefix(rep.Data, []byte("%PDF")))
	assert.Equal(t, 1, pageCount(t, rep.Data))
}

func TestBuild_FromAnalyzerOutput(t *testing.T) {
	c, err := catalog.New(
		[]catalog.CareerRow{
			{Career: "Data Analyst", Skills: "Python, SQL, Excel"},
			{Career: "Designer", Skills: "Figma"},
			{Career: "Intern", Skills: ""},
		},
		[]catalog.CourseRow{{Skill: "sql", CourseLink: "https://courses.example/sql"}},
	)
	require.NoError(t, err)
	results := analysis.NewAnalyzer(c).Analyze([]string{"python"})

	charts := &countingCharts{}
	rep, err := NewBuilder(DefaultLayout(), charts).Build(results)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, rep.Pages, 1)
	assert.NotEmpty(t, rep.Data)
	assert.Equal(t, rep.Pages, pageCount(t, rep.Data))
	// the zero-skill career gets no chart
	assert.Equal(t, 2, charts.calls)
}

func TestBuild_PageBreaks(t *testing.T) {
	// with the default layout a chart block takes 330pt, so two fit per page
	results := []analysis.Result{chartResult("A"), chartResult("B"), chartResult("C"), chartResult("D")}
	rep, err := NewBuilder(DefaultLayout(), &countingCharts{}).Build(results)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Pages)

	results = append(results, chartResult("E"))
	rep, err = NewBuilder(DefaultLayout(), &countingCharts{}).Build(results)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Pages)
}

func TestBuild_LayoutIsConfigurable(t *testing.T) {
	l := DefaultLayout()
	l.PageBreakY = 0
	l.ChartSize = 50
	results := []analysis.Result{chartResult("A"), chartResult("B"), chartResult("C"), chartResult("D")}

	rep, err := NewBuilder(l, &countingCharts{}).Build(results)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Pages)
}

func TestBuild_CoursesAndUnicode(t *testing.T) {
	r := chartResult("Développeur")
	r.Courses = []string{"https://courses.example/sql", "https://courses.example/excel"}
	rep, err := NewBuilder(DefaultLayout(), &countingCharts{}).Build([]analysis.Result{r})
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Pages)
}

func TestBuild_ChartFailure(t *testing.T) {
	charts := &countingCharts{err: errors.New("boom")}
	rep, err := NewBuilder(DefaultLayout(), charts).Build([]analysis.Result{chartResult("A")})

	assert.True(t, errors.Is(err, ErrReportGeneration))
	assert.Nil(t, rep.Data)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "None", joinOrNone(nil))
	assert.Equal(t, "Go, SQL", joinOrNone([]string{"Go", "SQL"}))
	assert.Equal(t, "66.67", formatPercent(66.67))
	assert.Equal(t, "0", formatPercent(0))
}
