// Package sqlite stores named layouts in a SQLite database.
package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
)

// LazyLayoutRepository opens the database behind provider on its first call.
type LazyLayoutRepository struct {
	provider port.DatabaseProvider
	codec    port.LayoutCodec
	repo     repository.LayoutRepository
	once     sync.Once
	initErr  error
}

// NewLazyLayoutRepository creates a lazy-loading layout repository.
func NewLazyLayoutRepository(provider port.DatabaseProvider, codec port.LayoutCodec) repository.LayoutRepository {
	return &LazyLayoutRepository{provider: provider, codec: codec}
}

func (r *LazyLayoutRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewLayoutRepository(db, r.codec)
	})
	return r.initErr
}

func (r *LazyLayoutRepository) Save(ctx context.Context, layout *entity.SavedLayout) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, layout)
}

func (r *LazyLayoutRepository) Get(ctx context.Context, name string) (*entity.SavedLayout, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, name)
}

func (r *LazyLayoutRepository) List(ctx context.Context) ([]*entity.SavedLayout, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx)
}

func (r *LazyLayoutRepository) Delete(ctx context.Context, name string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, name)
}
