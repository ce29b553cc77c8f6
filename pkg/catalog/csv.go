package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSVSource reads the catalog from two CSV files with header rows:
// "career,skills" and "skill,course_link".
type CSVSource struct {
	CareersPath string
	CoursesPath string
}

func (s CSVSource) Load(_ context.Context) ([]CareerRow, []CourseRow, error) {
	careers, err := readTable(s.CareersPath, "career", "skills")
	if err != nil {
		return nil, nil, err
	}
	courses, err := readTable(s.CoursesPath, "skill", "course_link")
	if err != nil {
		return nil, nil, err
	}
	careerRows := make([]CareerRow, len(careers))
	for i, r := range careers {
		careerRows[i] = CareerRow{Career: r[0], Skills: r[1]}
	}
	courseRows := make([]CourseRow, len(courses))
	for i, r := range courses {
		courseRows[i] = CourseRow{Skill: r[0], CourseLink: r[1]}
	}
	return careerRows, courseRows, nil
}

func readTable(path, keyCol, valCol string) ([][2]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ParseTable(f, keyCol, valCol)
}

// ParseTable reads a CSV stream and returns (keyCol, valCol) pairs for every
// data row. Columns are located by header name, extra columns are ignored.
func ParseTable(r io.Reader, keyCol, valCol string) ([][2]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header", ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	ki, vi := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))) {
		case keyCol:
			ki = i
		case valCol:
			vi = i
		}
	}
	if ki < 0 || vi < 0 {
		return nil, fmt.Errorf("%w: header must contain %q and %q", ErrMalformed, keyCol, valCol)
	}

	var out [][2]string
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if ki >= len(rec) || vi >= len(rec) {
			return nil, fmt.Errorf("%w: line %d has %d columns", ErrMalformed, line, len(rec))
		}
		out = append(out, [2]string{rec[ki], rec[vi]})
	}
	return out, nil
}
