package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/codec"
	"github.com/bnema/dockyard/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dockyard/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func testDocument(title string) *entity.LayoutDocument {
	doc := entity.NewLayoutDocument()
	doc.PrimaryWorkspace = &entity.WorkspaceDocument{
		ID: "primary",
		DockTree: &entity.NodeDocument{
			Type:        entity.NodeDocumentSplit,
			ID:          "root",
			Orientation: entity.Horizontal,
			Sizes:       []float64{0.5, 0.5},
			Children: []entity.NodeDocument{
				{Type: entity.NodeDocumentTab, ID: "left", SelectedID: "a", Tabs: []entity.ItemDocument{{ID: "a", Title: title}}},
				{Type: entity.NodeDocumentTab, ID: "right", SelectedID: "b", Tabs: []entity.ItemDocument{{ID: "b", Title: "B"}}},
			},
		},
	}
	return doc
}

func TestLayoutRepository_CRUD(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "dockyard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewLayoutRepository(db, codec.JSON{})
	updatedAt := time.UnixMilli(1_760_000_000_000)

	layout := &entity.SavedLayout{
		Name:      "work",
		Document:  testDocument("A"),
		Digest:    0xfeedfacecafebeef,
		ItemCount: 2,
		UpdatedAt: updatedAt,
	}
	require.NoError(t, repo.Save(ctx, layout))

	got, err := repo.Get(ctx, "work")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "work", got.Name)
	assert.Equal(t, uint64(0xfeedfacecafebeef), got.Digest)
	assert.Equal(t, 2, got.ItemCount)
	assert.True(t, updatedAt.Equal(got.UpdatedAt))
	assert.Equal(t, testDocument("A"), got.Document)

	// Upsert replaces the row.
	layout.Document = testDocument("Renamed")
	layout.Digest = 7
	require.NoError(t, repo.Save(ctx, layout))

	got, err = repo.Get(ctx, "work")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got.Digest)
	assert.Equal(t, "Renamed", got.Document.PrimaryWorkspace.DockTree.Children[0].Tabs[0].Title)

	require.NoError(t, repo.Delete(ctx, "work"))
	got, err = repo.Get(ctx, "work")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLayoutRepository_GetMissing(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "dockyard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	got, err := sqlite.NewLayoutRepository(db, codec.JSON{}).Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLayoutRepository_ListOrderedByName(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "dockyard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewLayoutRepository(db, codec.JSON{})
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, repo.Save(ctx, &entity.SavedLayout{Name: name, Document: testDocument(name), ItemCount: 2}))
	}

	layouts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, layouts, 3)

	names := make([]string, 0, len(layouts))
	for _, l := range layouts {
		names = append(names, l.Name)
		assert.Nil(t, l.Document, "summaries carry no document")
		assert.Equal(t, 2, l.ItemCount)
		assert.False(t, l.UpdatedAt.IsZero())
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestLayoutRepository_ReadsRowsWrittenInOtherFormat(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "dockyard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	yamlRepo := sqlite.NewLayoutRepository(db, codec.YAML{})
	require.NoError(t, yamlRepo.Save(ctx, &entity.SavedLayout{Name: "from-yaml", Document: testDocument("Y")}))

	got, err := sqlite.NewLayoutRepository(db, codec.JSON{}).Get(ctx, "from-yaml")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, testDocument("Y"), got.Document)
}

func TestLazyLayoutRepository_OpensOnFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "dockyard.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewLazyLayoutRepository(lazy, codec.TOML{})
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, repo.Save(ctx, &entity.SavedLayout{Name: "work", Document: testDocument("T")}))
	assert.True(t, lazy.IsInitialized())

	got, err := repo.Get(ctx, "work")
	require.NoError(t, err)
	assert.Equal(t, testDocument("T"), got.Document)

	layouts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, layouts, 1)

	require.NoError(t, repo.Delete(ctx, "work"))
}

func TestLazyLayoutRepository_PropagatesOpenError(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB("")

	repo := sqlite.NewLazyLayoutRepository(lazy, codec.JSON{})
	_, err := repo.List(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database initialization failed")
	assert.False(t, lazy.IsInitialized())
}
