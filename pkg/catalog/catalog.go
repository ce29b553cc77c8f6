package catalog

import (
	"context"
	"fmt"
	"strings"
)

// Catalog is the immutable career → skills and skill → course mapping.
// It is safe for concurrent readers; nothing mutates it after New returns.
type Catalog struct {
	careers []Career
	index   map[string]int
	courses map[string]string
	known   map[string]struct{}
}

// New builds a catalog from already loaded rows.
func New(careerRows []CareerRow, courseRows []CourseRow) (*Catalog, error) {
	c := &Catalog{
		careers: make([]Career, 0, len(careerRows)),
		index:   make(map[string]int, len(careerRows)),
		courses: make(map[string]string, len(courseRows)),
		known:   make(map[string]struct{}),
	}
	for i, row := range careerRows {
		name := strings.TrimSpace(row.Career)
		if name == "" {
			return nil, fmt.Errorf("%w: career row %d has empty name", ErrMalformed, i+1)
		}
		if _, ok := c.index[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCareer, name)
		}
		skills := SplitSkills(row.Skills)
		for _, s := range skills {
			c.known[strings.ToLower(s)] = struct{}{}
		}
		c.index[name] = len(c.careers)
		c.careers = append(c.careers, Career{Name: name, Skills: skills})
	}
	for i, row := range courseRows {
		skill := strings.ToLower(strings.TrimSpace(row.Skill))
		if skill == "" {
			return nil, fmt.Errorf("%w: course row %d has empty skill", ErrMalformed, i+1)
		}
		// last occurrence wins
		c.courses[skill] = strings.TrimSpace(row.CourseLink)
	}
	return c, nil
}

// Load reads both tables from src and builds the catalog.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	careers, courses, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return New(careers, courses)
}

// SplitSkills splits a comma separated skills cell and trims every token.
// Empty tokens are dropped, so an empty cell gives a career without skills.
func SplitSkills(cell string) []string {
	parts := strings.Split(cell, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Careers returns careers in catalog order. The slice is a copy.
func (c *Catalog) Careers() []Career {
	out := make([]Career, len(c.careers))
	for i, cr := range c.careers {
		out[i] = Career{Name: cr.Name, Skills: append([]string(nil), cr.Skills...)}
	}
	return out
}

// RequiredSkills returns the ordered skills of a career.
func (c *Catalog) RequiredSkills(career string) ([]string, bool) {
	i, ok := c.index[career]
	if !ok {
		return nil, false
	}
	return append([]string(nil), c.careers[i].Skills...), true
}

// AllKnownSkills returns the lowercase set of every skill used by any career.
func (c *Catalog) AllKnownSkills() map[string]struct{} {
	out := make(map[string]struct{}, len(c.known))
	for k := range c.known {
		out[k] = struct{}{}
	}
	return out
}

// CourseFor looks a course link up case-insensitively.
func (c *Catalog) CourseFor(skill string) (string, bool) {
	link, ok := c.courses[strings.ToLower(strings.TrimSpace(skill))]
	return link, ok
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.careers)
}
