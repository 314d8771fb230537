package snapshot

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	repomocks "github.com/bnema/dockyard/internal/domain/repository/mocks"
)

type staticProvider struct {
	doc *entity.LayoutDocument
}

func (p *staticProvider) Snapshot() *entity.LayoutDocument {
	return p.doc
}

func newLayoutsUseCase(t *testing.T) (*usecase.ManageLayoutsUseCase, *repomocks.MockLayoutRepository) {
	t.Helper()
	repo := repomocks.NewMockLayoutRepository(t)
	codec := portmocks.NewMockLayoutCodec(t)
	codec.EXPECT().Encode(mock.Anything, mock.Anything).RunAndReturn(func(w io.Writer, _ *entity.LayoutDocument) error {
		_, err := io.WriteString(w, "doc")
		return err
	}).Maybe()
	return usecase.NewManageLayoutsUseCase(repo, codec), repo
}

func TestService_DebouncesSaves(t *testing.T) {
	layouts, repo := newLayoutsUseCase(t)
	repo.EXPECT().Get(mock.Anything, "autosave").Return(nil, nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(l *entity.SavedLayout) bool {
		return l.Name == "autosave"
	})).Return(nil).Once()

	svc := NewService(layouts, &staticProvider{doc: entity.NewLayoutDocument()}, "autosave", 20*time.Millisecond)
	saved := make(chan error, 4)
	svc.OnSaved(func(err error) { saved <- err })
	svc.Start(context.Background())

	for range 5 {
		svc.MarkDirty()
	}

	select {
	case err := <-saved:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("autosave did not run")
	}

	// Nothing left to write.
	require.NoError(t, svc.Stop(context.Background()))
}

func TestService_StopWritesPendingChange(t *testing.T) {
	layouts, repo := newLayoutsUseCase(t)
	repo.EXPECT().Get(mock.Anything, "work").Return(nil, nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewService(layouts, &staticProvider{doc: entity.NewLayoutDocument()}, "work", time.Hour)
	svc.Start(context.Background())
	svc.MarkDirty()

	require.NoError(t, svc.Stop(context.Background()))
	assert.False(t, svc.dirty)
}

func TestService_FailedSaveStaysDirty(t *testing.T) {
	layouts, repo := newLayoutsUseCase(t)
	repo.EXPECT().Get(mock.Anything, "work").Return(nil, nil)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("database is locked")).Once()
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewService(layouts, &staticProvider{doc: entity.NewLayoutDocument()}, "work", time.Hour)
	svc.MarkDirty()

	err := svc.SaveNow(context.Background())
	require.Error(t, err)
	assert.True(t, svc.dirty)

	require.NoError(t, svc.SaveNow(context.Background()))
	assert.False(t, svc.dirty)
}

func TestService_CleanStopDoesNothing(t *testing.T) {
	layouts, _ := newLayoutsUseCase(t)
	svc := NewService(layouts, &staticProvider{}, "work", 0)

	assert.Equal(t, defaultInterval, svc.interval)
	require.NoError(t, svc.Stop(context.Background()))
}

func TestService_NilSnapshotIsSkipped(t *testing.T) {
	layouts, _ := newLayoutsUseCase(t)
	svc := NewService(layouts, &staticProvider{}, "work", time.Hour)
	svc.MarkDirty()

	require.NoError(t, svc.SaveNow(context.Background()))
}
