package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/skillgap/pkg/catalog"
	"github.com/artem13815/skillgap/pkg/health/checkers"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestReady(t *testing.T) {
	full, err := catalog.New([]catalog.CareerRow{{Career: "A", Skills: "Go"}}, nil)
	require.NoError(t, err)
	empty, err := catalog.New(nil, nil)
	require.NoError(t, err)

	ok := NewService(checkers.NewCatalogChecker(full), checkers.NewPostgresChecker(fakePinger{}))
	assert.NoError(t, ok.Ready(context.Background()))

	notReady := NewService(checkers.NewCatalogChecker(empty))
	err = notReady.Ready(context.Background())
	assert.True(t, errors.Is(err, checkers.ErrEmptyCatalog))
	assert.Contains(t, err.Error(), "catalog")

	dbDown := NewService(checkers.NewCatalogChecker(full), checkers.NewPostgresChecker(fakePinger{err: errors.New("refused")}))
	err = dbDown.Ready(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres: refused")
}

func TestNewService_SkipsNil(t *testing.T) {
	svc := NewService(nil)
	assert.NoError(t, svc.Ready(context.Background()))
}

func TestStatuses_ReportsEveryChecker(t *testing.T) {
	empty, err := catalog.New(nil, nil)
	require.NoError(t, err)

	svc := NewService(checkers.NewCatalogChecker(empty), checkers.NewPostgresChecker(fakePinger{}))
	got := svc.Statuses(context.Background())
	require.Len(t, got, 2)
	assert.Equal(t, "catalog", got[0].Name)
	assert.ErrorIs(t, got[0].Err, checkers.ErrEmptyCatalog)
	assert.Equal(t, "postgres", got[1].Name)
	assert.NoError(t, got[1].Err)
}
