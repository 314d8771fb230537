package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/infrastructure/codec"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	upsertLayoutSQL = `
INSERT INTO layouts (name, format, document, digest, item_count, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
    format = excluded.format,
    document = excluded.document,
    digest = excluded.digest,
    item_count = excluded.item_count,
    updated_at = excluded.updated_at`

	getLayoutSQL = `
SELECT name, format, document, digest, item_count, updated_at
FROM layouts WHERE name = ?`

	listLayoutsSQL = `
SELECT name, digest, item_count, updated_at
FROM layouts ORDER BY name`

	deleteLayoutSQL = `DELETE FROM layouts WHERE name = ?`
)

type layoutRepo struct {
	db    *sql.DB
	codec port.LayoutCodec
}

// NewLayoutRepository stores documents encoded with layoutCodec. Rows written with
// another format are read back through that format's codec.
func NewLayoutRepository(db *sql.DB, layoutCodec port.LayoutCodec) repository.LayoutRepository {
	return &layoutRepo{db: db, codec: layoutCodec}
}

// Save inserts or replaces a layout.
func (r *layoutRepo) Save(ctx context.Context, layout *entity.SavedLayout) error {
	log := logging.FromContext(ctx)
	if layout == nil || layout.Document == nil {
		return errors.New("layout cannot be nil")
	}

	var buf bytes.Buffer
	if err := r.codec.Encode(&buf, layout.Document); err != nil {
		return fmt.Errorf("encode layout %q: %w", layout.Name, err)
	}

	updatedAt := layout.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	log.Debug().
		Str("name", layout.Name).
		Str("format", r.codec.Name()).
		Int("item_count", layout.ItemCount).
		Msg("saving layout")

	_, err := r.db.ExecContext(ctx, upsertLayoutSQL,
		layout.Name,
		r.codec.Name(),
		buf.Bytes(),
		int64(layout.Digest), // stored bit for bit; sqlite integers are signed
		int64(layout.ItemCount),
		updatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("upsert layout %q: %w", layout.Name, err)
	}
	return nil
}

// Get returns the layout with name, or nil.
func (r *layoutRepo) Get(ctx context.Context, name string) (*entity.SavedLayout, error) {
	var (
		format    string
		document  []byte
		digest    int64
		itemCount int64
		updatedAt int64
		layout    entity.SavedLayout
	)
	err := r.db.QueryRowContext(ctx, getLayoutSQL, name).
		Scan(&layout.Name, &format, &document, &digest, &itemCount, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	decoder := r.codec
	if format != r.codec.Name() {
		if decoder, err = codec.ByName(format); err != nil {
			return nil, fmt.Errorf("layout %q: %w", name, err)
		}
	}
	doc, err := decoder.Decode(bytes.NewReader(document))
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("name", name).Msg("failed to decode stored layout")
		return nil, err
	}

	layout.Document = doc
	layout.Digest = uint64(digest)
	layout.ItemCount = int(itemCount)
	layout.UpdatedAt = time.UnixMilli(updatedAt)
	return &layout, nil
}

// List returns layout summaries without documents.
func (r *layoutRepo) List(ctx context.Context) ([]*entity.SavedLayout, error) {
	rows, err := r.db.QueryContext(ctx, listLayoutsSQL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var layouts []*entity.SavedLayout
	for rows.Next() {
		var (
			layout    entity.SavedLayout
			digest    int64
			itemCount int64
			updatedAt int64
		)
		if err := rows.Scan(&layout.Name, &digest, &itemCount, &updatedAt); err != nil {
			return nil, err
		}
		layout.Digest = uint64(digest)
		layout.ItemCount = int(itemCount)
		layout.UpdatedAt = time.UnixMilli(updatedAt)
		layouts = append(layouts, &layout)
	}
	return layouts, rows.Err()
}

// Delete removes the layout with name.
func (r *layoutRepo) Delete(ctx context.Context, name string) error {
	logging.FromContext(ctx).Debug().Str("name", name).Msg("deleting layout")
	_, err := r.db.ExecContext(ctx, deleteLayoutSQL, name)
	return err
}
