package usecase_test

import (
	"errors"
	"io"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	repomocks "github.com/bnema/dockyard/internal/domain/repository/mocks"
)

// encodeAs makes the codec mock write body for every Encode call.
func encodeAs(codec *portmocks.MockLayoutCodec, body string) {
	codec.EXPECT().Encode(mock.Anything, mock.Anything).RunAndReturn(func(w io.Writer, _ *entity.LayoutDocument) error {
		_, err := io.WriteString(w, body)
		return err
	})
}

func TestManageLayoutsUseCase_Save_WritesNewLayout(t *testing.T) {
	ctx := testContext()
	layoutRepo := repomocks.NewMockLayoutRepository(t)
	codec := portmocks.NewMockLayoutCodec(t)
	encodeAs(codec, "v1")
	doc := validDocument()

	layoutRepo.EXPECT().Get(mock.Anything, "work").Return(nil, nil)
	layoutRepo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(l *entity.SavedLayout) bool {
		return l.Name == "work" &&
			l.Document == doc &&
			l.Digest == xxhash.Sum64String("v1") &&
			l.ItemCount == 2 &&
			!l.UpdatedAt.IsZero()
	})).Return(nil)

	uc := usecase.NewManageLayoutsUseCase(layoutRepo, codec)
	out, err := uc.Save(ctx, "work", doc)
	require.NoError(t, err)

	assert.True(t, out.Written)
	assert.Equal(t, "work", out.Layout.Name)
}

func TestManageLayoutsUseCase_Save_SkipsUnchangedDigest(t *testing.T) {
	ctx := testContext()
	layoutRepo := repomocks.NewMockLayoutRepository(t)
	codec := portmocks.NewMockLayoutCodec(t)
	encodeAs(codec, "same")

	stored := &entity.SavedLayout{Name: "work", Digest: xxhash.Sum64String("same")}
	layoutRepo.EXPECT().Get(mock.Anything, "work").Return(stored, nil)
	// No Save expectation: the mock fails the test if it is called.

	uc := usecase.NewManageLayoutsUseCase(layoutRepo, codec)
	out, err := uc.Save(ctx, "work", validDocument())
	require.NoError(t, err)

	assert.False(t, out.Written)
	assert.Same(t, stored, out.Layout)
}

func TestManageLayoutsUseCase_Save_OverwritesChangedDigest(t *testing.T) {
	ctx := testContext()
	layoutRepo := repomocks.NewMockLayoutRepository(t)
	codec := portmocks.NewMockLayoutCodec(t)
	encodeAs(codec, "new")

	layoutRepo.EXPECT().Get(mock.Anything, "work").Return(&entity.SavedLayout{Name: "work", Digest: 1}, nil)
	layoutRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	uc := usecase.NewManageLayoutsUseCase(layoutRepo, codec)
	out, err := uc.Save(ctx, "work", validDocument())
	require.NoError(t, err)
	assert.True(t, out.Written)
}

func TestManageLayoutsUseCase_Save_Errors(t *testing.T) {
	ctx := testContext()

	t.Run("invalid name", func(t *testing.T) {
		uc := usecase.NewManageLayoutsUseCase(repomocks.NewMockLayoutRepository(t), portmocks.NewMockLayoutCodec(t))
		_, err := uc.Save(ctx, "../etc", validDocument())
		assert.ErrorIs(t, err, entity.ErrInvalidLayoutName)
	})

	t.Run("nil document", func(t *testing.T) {
		uc := usecase.NewManageLayoutsUseCase(repomocks.NewMockLayoutRepository(t), portmocks.NewMockLayoutCodec(t))
		_, err := uc.Save(ctx, "work", nil)
		assert.Error(t, err)
	})

	t.Run("encode failure", func(t *testing.T) {
		codec := portmocks.NewMockLayoutCodec(t)
		codec.EXPECT().Encode(mock.Anything, mock.Anything).Return(errors.New("bad float"))
		uc := usecase.NewManageLayoutsUseCase(repomocks.NewMockLayoutRepository(t), codec)

		_, err := uc.Save(ctx, "work", validDocument())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to encode layout for digest")
	})

	t.Run("repository failure", func(t *testing.T) {
		layoutRepo := repomocks.NewMockLayoutRepository(t)
		codec := portmocks.NewMockLayoutCodec(t)
		encodeAs(codec, "v1")
		boom := errors.New("database is locked")
		layoutRepo.EXPECT().Get(mock.Anything, "work").Return(nil, nil)
		layoutRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(boom)

		uc := usecase.NewManageLayoutsUseCase(layoutRepo, codec)
		_, err := uc.Save(ctx, "work", validDocument())

		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "failed to save layout")
	})
}

func TestManageLayoutsUseCase_Load(t *testing.T) {
	ctx := testContext()

	t.Run("found", func(t *testing.T) {
		layoutRepo := repomocks.NewMockLayoutRepository(t)
		stored := &entity.SavedLayout{Name: "work", Document: validDocument()}
		layoutRepo.EXPECT().Get(mock.Anything, "work").Return(stored, nil)

		uc := usecase.NewManageLayoutsUseCase(layoutRepo, nil)
		got, err := uc.Load(ctx, "work")
		require.NoError(t, err)
		assert.Same(t, stored, got)
	})

	t.Run("missing", func(t *testing.T) {
		layoutRepo := repomocks.NewMockLayoutRepository(t)
		layoutRepo.EXPECT().Get(mock.Anything, "gone").Return(nil, nil)

		uc := usecase.NewManageLayoutsUseCase(layoutRepo, nil)
		got, err := uc.Load(ctx, "gone")
		assert.ErrorIs(t, err, entity.ErrLayoutNotFound)
		assert.Nil(t, got)
	})

	t.Run("invalid name", func(t *testing.T) {
		uc := usecase.NewManageLayoutsUseCase(repomocks.NewMockLayoutRepository(t), nil)
		_, err := uc.Load(ctx, "")
		assert.ErrorIs(t, err, entity.ErrInvalidLayoutName)
	})
}

func TestManageLayoutsUseCase_ListAndDelete(t *testing.T) {
	ctx := testContext()
	layoutRepo := repomocks.NewMockLayoutRepository(t)
	summaries := []*entity.SavedLayout{{Name: "a"}, {Name: "b"}}

	layoutRepo.EXPECT().List(mock.Anything).Return(summaries, nil)
	layoutRepo.EXPECT().Delete(mock.Anything, "a").Return(nil)
	layoutRepo.EXPECT().Delete(mock.Anything, "b").Return(errors.New("disk I/O error"))

	uc := usecase.NewManageLayoutsUseCase(layoutRepo, nil)

	got, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, summaries, got)

	require.NoError(t, uc.Delete(ctx, "a"))

	err = uc.Delete(ctx, "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete layout")

	assert.ErrorIs(t, uc.Delete(ctx, "bad name"), entity.ErrInvalidLayoutName)
}
