package checkers

import (
	"context"
	"errors"
)

var ErrEmptyCatalog = errors.New("catalog has no careers")

type sized interface {
	Len() int
}

// CatalogChecker reports not ready while the skill catalog is empty.
type CatalogChecker struct {
	catalog sized
}

func NewCatalogChecker(c sized) *CatalogChecker { return &CatalogChecker{catalog: c} }

func (c *CatalogChecker) Name() string { return "catalog" }

func (c *CatalogChecker) Check(context.Context) error {
	if c.catalog == nil || c.catalog.Len() == 0 {
		return ErrEmptyCatalog
	}
	return nil
}
