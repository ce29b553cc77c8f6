package analysis

import (
	"math"
	"strings"

	"github.com/artem13815/skillgap/pkg/catalog"
)

// Catalog is the read-only view of the skill catalog the analyzer needs.
type Catalog interface {
	Careers() []catalog.Career
	CourseFor(skill string) (string, bool)
}

// Analyzer compares a user's skills with every career of the catalog.
type Analyzer struct {
	catalog Catalog
}

func NewAnalyzer(c Catalog) *Analyzer { return &Analyzer{catalog: c} }

// Analyze returns one Result per career, in catalog order. It never fails.
func (a *Analyzer) Analyze(userSkills []string) []Result {
	have := make(map[string]struct{}, len(userSkills))
	for _, s := range userSkills {
		have[strings.ToLower(s)] = struct{}{}
	}

	careers := a.catalog.Careers()
	out := make([]Result, 0, len(careers))
	for _, c := range careers {
		out = append(out, a.compare(c, have))
	}
	return out
}

func (a *Analyzer) compare(c catalog.Career, have map[string]struct{}) Result {
	res := Result{
		Career:  c.Name,
		Matched: []string{},
		Missing: []string{},
		Courses: []string{},
	}
	for _, s := range c.Skills {
		if _, ok := have[strings.ToLower(s)]; ok {
			res.Matched = append(res.Matched, s)
		} else {
			res.Missing = append(res.Missing, s)
		}
	}
	res.MatchPercent = MatchPercent(len(res.Matched), len(c.Skills))
	for _, s := range res.Missing {
		if link, ok := a.catalog.CourseFor(s); ok {
			res.Courses = append(res.Courses, link)
		}
	}
	return res
}

// MatchPercent is 100*matched/required rounded to 2 decimals; 0 when required is 0.
func MatchPercent(matched, required int) float64 {
	if required == 0 {
		return 0
	}
	return math.Round(float64(matched)*100/float64(required)*100) / 100
}
