package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/artem13815/skillgap/pkg/catalog"
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// CatalogRepository implements catalog.Source backed by PostgreSQL (pgx).
// Tables mirror the CSV inputs: careers(career, skills) and
// course_recommendations(skill, course_link); row order is the id order.
type CatalogRepository struct {
	db querier
}

func NewCatalogRepository(db querier) (*CatalogRepository, error) {
	r := &CatalogRepository{db: db}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *CatalogRepository) ensureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
CREATE TABLE IF NOT EXISTS careers (
	id BIGSERIAL PRIMARY KEY,
	career TEXT NOT NULL UNIQUE,
	skills TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS course_recommendations (
	id BIGSERIAL PRIMARY KEY,
	skill TEXT NOT NULL,
	course_link TEXT NOT NULL
);
`)
	if err != nil {
		return fmt.Errorf("ensure catalog schema: %w", err)
	}
	return nil
}

func (r *CatalogRepository) Load(ctx context.Context) ([]catalog.CareerRow, []catalog.CourseRow, error) {
	rows, err := r.db.Query(ctx, `SELECT career, skills FROM careers ORDER BY id`)
	if err != nil {
		return nil, nil, fmt.Errorf("query careers: %w", err)
	}
	careers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.CareerRow, error) {
		var c catalog.CareerRow
		err := row.Scan(&c.Career, &c.Skills)
		return c, err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scan careers: %w", err)
	}

	rows, err = r.db.Query(ctx, `SELECT skill, course_link FROM course_recommendations ORDER BY id`)
	if err != nil {
		return nil, nil, fmt.Errorf("query course recommendations: %w", err)
	}
	courses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.CourseRow, error) {
		var c catalog.CourseRow
		err := row.Scan(&c.Skill, &c.CourseLink)
		return c, err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scan course recommendations: %w", err)
	}
	return careers, courses, nil
}

// Seed replaces both tables with the given rows in one transaction.
// Used to import the CSV catalog into the database.
func Seed(ctx context.Context, db txBeginner, careers []catalog.CareerRow, courses []catalog.CourseRow) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `TRUNCATE careers, course_recommendations RESTART IDENTITY`); err != nil {
		return fmt.Errorf("truncate catalog: %w", err)
	}
	for _, c := range careers {
		if _, err := tx.Exec(ctx, `INSERT INTO careers (career, skills) VALUES ($1, $2)`, c.Career, c.Skills); err != nil {
			return fmt.Errorf("insert career %q: %w", c.Career, err)
		}
	}
	for _, c := range courses {
		if _, err := tx.Exec(ctx, `INSERT INTO course_recommendations (skill, course_link) VALUES ($1, $2)`, c.Skill, c.CourseLink); err != nil {
			return fmt.Errorf("insert course for %q: %w", c.Skill, err)
		}
	}
	return tx.Commit(ctx)
}

var _ catalog.Source = (*CatalogRepository)(nil)
