package catalog

import (
	"context"
	"errors"
)

// Career — профиль профессии с упорядоченным списком требуемых навыков.
type Career struct {
	Name   string
	Skills []string
}

// CareerRow — строка таблицы профессий: имя и навыки через запятую.
type CareerRow struct {
	Career string
	Skills string
}

// CourseRow — строка таблицы рекомендаций: навык и ссылка на курс.
type CourseRow struct {
	Skill      string
	CourseLink string
}

// Source — порт загрузки двух исходных таблиц каталога.
type Source interface {
	Load(ctx context.Context) ([]CareerRow, []CourseRow, error)
}

var (
	// ErrMalformed is returned when an input table cannot be turned into a catalog.
	ErrMalformed = errors.New("malformed catalog input")
	// ErrDuplicateCareer is returned when a career name occurs twice.
	ErrDuplicateCareer = errors.New("duplicate career")
)
