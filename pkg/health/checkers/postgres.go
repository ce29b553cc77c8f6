package checkers

import (
	"context"
	"time"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// PostgresChecker pings the catalog database.
type PostgresChecker struct {
	db pinger
}

func NewPostgresChecker(db pinger) *PostgresChecker {
	return &PostgresChecker{db: db}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return c.db.Ping(ctx)
}
