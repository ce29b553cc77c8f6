package health

import (
	"context"
	"fmt"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Status — результат одной проверки.
type Status struct {
	Name string
	Err  error
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	// Ready fails on the first failing checker, naming it in the error.
	Ready(ctx context.Context) error
	// Statuses runs every checker, in registration order.
	Statuses(ctx context.Context) []Status
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers. Nil checkers are skipped.
func NewService(checkers ...Checker) ReadinessUseCase {
	s := &service{}
	for _, ch := range checkers {
		if ch != nil {
			s.checkers = append(s.checkers, ch)
		}
	}
	return s
}

func (s *service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return fmt.Errorf("%s: %w", ch.Name(), err)
		}
	}
	return nil
}

func (s *service) Statuses(ctx context.Context) []Status {
	out := make([]Status, 0, len(s.checkers))
	for _, ch := range s.checkers {
		out = append(out, Status{Name: ch.Name(), Err: ch.Check(ctx)})
	}
	return out
}
