package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/skillgap/pkg/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		[]catalog.CareerRow{
			{Career: "Data Analyst", Skills: "Python, SQL, Excel"},
			{Career: "Web Developer", Skills: "JavaScript, HTML, CSS"},
			{Career: "Intern", Skills: ""},
		},
		[]catalog.CourseRow{
			{Skill: "sql", CourseLink: "https://courses.example/sql"},
			{Skill: "Excel", CourseLink: "https://courses.example/excel"},
			{Skill: "HTML", CourseLink: "https://courses.example/html"},
		},
	)
	require.NoError(t, err)
	return c
}

func TestAnalyze_ClassifiesCaseInsensitively(t *testing.T) {
	a := NewAnalyzer(testCatalog(t))
	res := a.Analyze([]string{"PYTHON", "excel", "python"})

	require.Len(t, res, 3)
	da := res[0]
	assert.Equal(t, "Data Analyst", da.Career)
	assert.Equal(t, []string{"Python", "Excel"}, da.Matched)
	assert.Equal(t, []string{"SQL"}, da.Missing)
	assert.Equal(t, 66.67, da.MatchPercent)
	assert.Equal(t, []string{"https://courses.example/sql"}, da.Courses)

	web := res[1]
	assert.Empty(t, web.Matched)
	assert.Equal(t, []string{"JavaScript", "HTML", "CSS"}, web.Missing)
	assert.Equal(t, 0.0, web.MatchPercent)
	assert.Equal(t, []string{"https://courses.example/html"}, web.Courses)
}

func TestAnalyze_ZeroRequiredSkills(t *testing.T) {
	res := NewAnalyzer(testCatalog(t)).Analyze([]string{"python"})
	intern := res[2]
	assert.Equal(t, "Intern", intern.Career)
	assert.Equal(t, 0.0, intern.MatchPercent)
	assert.NotNil(t, intern.Matched)
	assert.Empty(t, intern.Matched)
	assert.Empty(t, intern.Missing)
	assert.Empty(t, intern.Courses)
}

func TestAnalyze_EmptyCatalog(t *testing.T) {
	c, err := catalog.New(nil, nil)
	require.NoError(t, err)
	res := NewAnalyzer(c).Analyze([]string{"python"})
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestAnalyze_Properties(t *testing.T) {
	c := testCatalog(t)
	a := NewAnalyzer(c)
	inputs := [][]string{
		nil,
		{"python"},
		{"Python", "SQL", "Excel", "HTML"},
		{"css", "CSS", "javascript"},
	}
	for _, in := range inputs {
		for _, r := range a.Analyze(in) {
			required, ok := c.RequiredSkills(r.Career)
			require.True(t, ok)

			union := map[string]int{}
			for _, s := range r.Matched {
				union[strings.ToLower(s)]++
			}
			for _, s := range r.Missing {
				union[strings.ToLower(s)]++
			}
			for _, s := range required {
				assert.Equal(t, 1, union[strings.ToLower(s)], "%s: %s", r.Career, s)
			}
			assert.Len(t, union, len(required))

			if len(required) > 0 {
				want := math.Round(100*float64(len(r.Matched))/float64(len(required))*100) / 100
				assert.Equal(t, want, r.MatchPercent)
			} else {
				assert.Equal(t, 0.0, r.MatchPercent)
			}
		}
	}
}

func TestMatchPercent(t *testing.T) {
	assert.Equal(t, 33.33, MatchPercent(1, 3))
	assert.Equal(t, 66.67, MatchPercent(2, 3))
	assert.Equal(t, 100.0, MatchPercent(4, 4))
	assert.Equal(t, 14.29, MatchPercent(1, 7))
	assert.Equal(t, 0.0, MatchPercent(0, 0))
}
