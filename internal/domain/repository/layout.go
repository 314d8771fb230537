package repository

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
)

//go:generate mockery --name=LayoutRepository --output=mocks --outpkg=mocks --with-expecter

// LayoutRepository persists named layout documents.
type LayoutRepository interface {
	// Save inserts or replaces the layout with the same name.
	Save(ctx context.Context, layout *entity.SavedLayout) error

	// Get returns the layout with name, or nil when none exists.
	Get(ctx context.Context, name string) (*entity.SavedLayout, error)

	// List returns every stored layout ordered by name. Documents are not
	// loaded; only the summary fields are set.
	List(ctx context.Context) ([]*entity.SavedLayout, error)

	// Delete removes the layout with name. Deleting a missing layout is not an error.
	Delete(ctx context.Context, name string) error
}
