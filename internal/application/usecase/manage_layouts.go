package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/domain/validation"
	"github.com/bnema/dockyard/internal/logging"
)

// ManageLayoutsUseCase stores layout documents under names.
type ManageLayoutsUseCase struct {
	layoutRepo repository.LayoutRepository
	codec      port.LayoutCodec
	now        func() time.Time
}

// NewManageLayoutsUseCase creates a new layout store use case. codec gives
// the canonical encoding used to fingerprint documents.
func NewManageLayoutsUseCase(layoutRepo repository.LayoutRepository, codec port.LayoutCodec) *ManageLayoutsUseCase {
	return &ManageLayoutsUseCase{
		layoutRepo: layoutRepo,
		codec:      codec,
		now:        time.Now,
	}
}

// SaveLayoutOutput reports the stored layout and whether anything was written.
type SaveLayoutOutput struct {
	Layout  *entity.SavedLayout
	Written bool
}

// Save stores doc under name. The write is skipped when the stored document
// has the same fingerprint.
func (uc *ManageLayoutsUseCase) Save(ctx context.Context, name string, doc *entity.LayoutDocument) (*SaveLayoutOutput, error) {
	log := logging.FromContext(ctx)

	if err := checkLayoutName(name); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("layout document is required")
	}

	digest, err := uc.Digest(doc)
	if err != nil {
		return nil, err
	}

	existing, err := uc.layoutRepo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get layout: %w", err)
	}
	if existing != nil && existing.Digest == digest {
		log.Debug().Str("name", name).Uint64("digest", digest).Msg("layout unchanged, skipping write")
		return &SaveLayoutOutput{Layout: existing}, nil
	}

	layout := &entity.SavedLayout{
		Name:      name,
		Document:  doc,
		Digest:    digest,
		ItemCount: doc.CountItems(),
		UpdatedAt: uc.now(),
	}
	if err := uc.layoutRepo.Save(ctx, layout); err != nil {
		return nil, fmt.Errorf("failed to save layout: %w", err)
	}

	log.Info().
		Str("name", name).
		Uint64("digest", digest).
		Int("item_count", layout.ItemCount).
		Msg("layout saved")
	return &SaveLayoutOutput{Layout: layout, Written: true}, nil
}

// Load returns the layout stored under name.
func (uc *ManageLayoutsUseCase) Load(ctx context.Context, name string) (*entity.SavedLayout, error) {
	if err := checkLayoutName(name); err != nil {
		return nil, err
	}

	layout, err := uc.layoutRepo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get layout: %w", err)
	}
	if layout == nil {
		return nil, fmt.Errorf("layout %q: %w", name, entity.ErrLayoutNotFound)
	}

	logging.FromContext(ctx).Debug().Str("name", name).Msg("layout loaded")
	return layout, nil
}

// List returns the stored layout summaries ordered by name.
func (uc *ManageLayoutsUseCase) List(ctx context.Context) ([]*entity.SavedLayout, error) {
	layouts, err := uc.layoutRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}
	return layouts, nil
}

// Delete removes the layout stored under name.
func (uc *ManageLayoutsUseCase) Delete(ctx context.Context, name string) error {
	if err := checkLayoutName(name); err != nil {
		return err
	}
	if err := uc.layoutRepo.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete layout: %w", err)
	}
	logging.FromContext(ctx).Info().Str("name", name).Msg("layout deleted")
	return nil
}

// Digest fingerprints doc with xxhash over its codec encoding.
func (uc *ManageLayoutsUseCase) Digest(doc *entity.LayoutDocument) (uint64, error) {
	var buf bytes.Buffer
	if err := uc.codec.Encode(&buf, doc); err != nil {
		return 0, fmt.Errorf("failed to encode layout for digest: %w", err)
	}
	return xxhash.Sum64(buf.Bytes()), nil
}

func checkLayoutName(name string) error {
	if !validation.IsLayoutName(name) {
		return fmt.Errorf("%w: %q", entity.ErrInvalidLayoutName, name)
	}
	return nil
}
