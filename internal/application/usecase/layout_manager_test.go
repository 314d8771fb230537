package usecase_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/bnema/dockyard/internal/application/port"
	portmocks "github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLayoutManager(codec port.LayoutCodec, panels ...entity.NodeID) (*usecase.LayoutManager, *window.Factory) {
	windows, factory := newTestWindows()
	return usecase.NewLayoutManager(windows, codec, newTestIDGen(), panels...), factory
}

func strPtr(s string) *string {
	return &s
}

func TestNewLayoutManager_CreatesPanels(t *testing.T) {
	lm, _ := newTestLayoutManager(nil, "left", "", "right")

	primary := lm.Control().PrimaryWorkspace()
	assert.Equal(t, entity.NodeID("id1"), primary.Tree().ID)
	assert.Equal(t, entity.WorkspaceID("id2"), primary.ID())
	assert.Equal(t, "H[T() T()]", shape(primary.Tree()))
	assert.IsType(t, &entity.TabNode{}, lm.Control().FindNode("left"))
	assert.IsType(t, &entity.TabNode{}, lm.Control().FindNode("right"))
	assert.Equal(t, entity.DefaultInsertPolicy, lm.InsertPolicy())
}

func TestCreateOrUpdateItem_IntoPanel(t *testing.T) {
	ctx := testContext()
	lm, _ := newTestLayoutManager(nil, "left", "right")

	got, err := lm.CreateOrUpdateItem(ctx, "x", nil, "ctx-x", "left")
	require.NoError(t, err)

	assert.Equal(t, entity.UntitledTitle, got.Title)
	assert.Equal(t, "ctx-x", got.Context)
	assert.Equal(t, entity.NodeID("left"), lm.Control().FindOwningTabNode("x").ID)
	// Panels left empty are collapsed by the commit.
	assert.Equal(t, "H[T(x)]", shape(lm.Control().PrimaryWorkspace().Tree()))
	assert.Equal(t, lm.Control().PrimaryWorkspace().ID(), got.Workspace())
	requireValidControl(t, lm.Control())
}

func TestCreateOrUpdateItem_UnderSplitFollowsPolicy(t *testing.T) {
	ctx := testContext()
	lm, _ := newTestLayoutManager(nil, "left")

	_, err := lm.CreateOrUpdateItem(ctx, "a", strPtr("A"), nil, "left")
	require.NoError(t, err)
	_, err = lm.CreateOrUpdateItem(ctx, "b", strPtr("B"), nil, "")
	require.NoError(t, err)
	assert.Equal(t, "H[T(a) T(b)]", shape(lm.Control().PrimaryWorkspace().Tree()))

	lm.SetInsertPolicy(entity.InsertCreateFirst)
	_, err = lm.CreateOrUpdateItem(ctx, "c", strPtr("C"), nil, "")
	require.NoError(t, err)
	assert.Equal(t, "H[T(c) T(a) T(b)]", shape(lm.Control().PrimaryWorkspace().Tree()))
	requireValidControl(t, lm.Control())
}

func TestCreateOrUpdateItem_UpdatesExisting(t *testing.T) {
	ctx := testContext()
	lm, _ := newTestLayoutManager(nil, "left")

	first, err := lm.CreateOrUpdateItem(ctx, "a", strPtr("A"), "v1", "left")
	require.NoError(t, err)

	second, err := lm.CreateOrUpdateItem(ctx, "a", nil, "v2", "elsewhere")
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, "A", second.Title)
	assert.Equal(t, "v2", second.Context)

	_, err = lm.CreateOrUpdateItem(ctx, "a", strPtr("Renamed"), "v3", "")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", first.Title)
	assert.Len(t, lm.Control().Items(), 1)

	// Hidden items are updated in place and stay hidden.
	_, err = lm.Control().Hide(ctx, first)
	require.NoError(t, err)
	_, err = lm.CreateOrUpdateItem(ctx, "a", strPtr("Hidden"), "v4", "")
	require.NoError(t, err)
	assert.True(t, lm.Control().IsHidden(first))
	assert.Equal(t, "Hidden", first.Title)
	assert.Equal(t, "v4", first.Context)
}

func TestCreateOrUpdateItem_BlankID(t *testing.T) {
	ctx := testContext()
	lm, _ := newTestLayoutManager(nil, "left")

	for _, id := range []entity.ItemID{"", "   "} {
		got, err := lm.CreateOrUpdateItem(ctx, id, nil, nil, "left")
		assert.Error(t, err)
		assert.Nil(t, got)
	}
	assert.Empty(t, lm.Control().Items())
}

func TestCreateOrUpdateItem_MissingParent(t *testing.T) {
	tests := []struct {
		name    string
		policy  entity.InsertPolicy
		want    string
		wantErr error
	}{
		{name: "create last", policy: entity.InsertCreateLast, want: "H[T(a) T(n)]"},
		{name: "create first", policy: entity.InsertCreateFirst, want: "H[T(n) T(a)]"},
		{name: "error", policy: entity.InsertError, want: "H[T(a)]", wantErr: entity.ErrParentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			lm, _ := newTestLayoutManager(nil, "left")
			_, err := lm.CreateOrUpdateItem(ctx, "a", nil, nil, "left")
			require.NoError(t, err)

			lm.SetInsertPolicy(tt.policy)
			got, err := lm.CreateOrUpdateItem(ctx, "n", nil, nil, "missing")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				assert.Nil(t, lm.Control().FindItem("n"))
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
			}
			assert.Equal(t, tt.want, shape(lm.Control().PrimaryWorkspace().Tree()))
			assert.Empty(t, lm.Control().SecondaryWorkspaces())
		})
	}
}

func TestCreateOrUpdateItem_MissingParentCreatesFloatingWindow(t *testing.T) {
	ctx := testContext()
	lm, factory := newTestLayoutManager(nil, "left")
	lm.SetInsertPolicy(entity.InsertCreateFloating)
	lm.SetFloatSize(entity.Size{Width: 500, Height: 400})
	lm.SetFloatSize(entity.Size{Width: -1, Height: 400})

	got, err := lm.CreateOrUpdateItem(ctx, "f", strPtr("Floating"), nil, "missing")
	require.NoError(t, err)

	cm := lm.Control()
	require.Len(t, cm.SecondaryWorkspaces(), 1)
	floating := cm.SecondaryWorkspaces()[0]
	assert.Same(t, floating, cm.WorkspaceForItem(got))
	assert.True(t, strings.HasPrefix(string(floating.Tree().ID), "float:"))
	assert.Equal(t, floating.ID(), got.Workspace())

	require.Len(t, factory.Open(), 1)
	win := factory.Open()[0]
	assert.True(t, win.Visible())
	assert.Same(t, factory.MainWindow(), win.Owner())
	assert.Equal(t, entity.Size{Width: 500, Height: 400}, win.Size())
	assert.Same(t, floating, win.Content())
	requireValidControl(t, cm)
}

func TestApplyLayout_MergesRuntimeItems(t *testing.T) {
	ctx := testContext()
	lm, factory := newTestLayoutManager(nil, "left")
	_, err := lm.CreateOrUpdateItem(ctx, "a", strPtr("Old Title"), "rt-a", "left")
	require.NoError(t, err)
	runtimeOnly, err := lm.CreateOrUpdateItem(ctx, "rt", strPtr("Runtime"), "rt-only", "left")
	require.NoError(t, err)
	previous := lm.Control()

	doc := validDocument()
	doc.PrimaryWorkspace.DockTree.Children[0].Tabs[0].Title = "New Title"
	doc.Hidden = []entity.ItemDocument{{ID: "h1", Title: "H1"}}
	doc.SecondaryWorkspaces = []entity.WindowDocument{{
		Left: 10, Top: 20, Width: 300, Height: 200,
		Workspace: &entity.WorkspaceDocument{
			ID: "float",
			DockTree: &entity.NodeDocument{
				Type:        entity.NodeDocumentSplit,
				Orientation: entity.Vertical,
				Children:    []entity.NodeDocument{{Type: entity.NodeDocumentTab, ID: "ft", Tabs: []entity.ItemDocument{{ID: "f"}}}},
			},
		},
	}}

	require.NoError(t, lm.ApplyLayout(ctx, doc))

	cm := lm.Control()
	assert.NotSame(t, previous, cm)
	requireValidControl(t, cm)
	assert.Equal(t, "H[T(a) T(b)]", shape(cm.PrimaryWorkspace().Tree()))

	a := cm.FindItem("a")
	require.NotNil(t, a)
	assert.Equal(t, "New Title", a.Title)
	assert.Equal(t, "rt-a", a.Context)

	assert.Equal(t, usecase.DefaultPlaceholder, cm.FindItem("h1").Context)
	assert.Same(t, runtimeOnly, cm.FindItem("rt"))
	assert.True(t, cm.IsHidden(runtimeOnly))
	assert.Equal(t, "rt-only", runtimeOnly.Context)

	require.Len(t, factory.Open(), 1)
	assert.True(t, factory.Open()[0].Visible())
	assert.Equal(t, entity.Point{X: 10, Y: 20}, factory.Open()[0].Position())
	assert.Empty(t, previous.Items())
}

func TestApplyLayout_FailureKeepsControl(t *testing.T) {
	ctx := testContext()
	lm, _ := newTestLayoutManager(nil, "left")
	_, err := lm.CreateOrUpdateItem(ctx, "a", nil, "rt-a", "left")
	require.NoError(t, err)
	previous := lm.Control()
	before := shape(previous.PrimaryWorkspace().Tree())

	doc := validDocument()
	doc.Major = 3
	err = lm.ApplyLayout(ctx, doc)

	assert.ErrorIs(t, err, entity.ErrUnsupportedVersion)
	assert.Same(t, previous, lm.Control())
	assert.Equal(t, before, shape(previous.PrimaryWorkspace().Tree()))
	assert.Equal(t, "rt-a", previous.FindItem("a").Context)
}

func TestSaveLayout_EncodesSnapshot(t *testing.T) {
	ctx := testContext()
	codec := portmocks.NewMockLayoutCodec(t)
	lm, _ := newTestLayoutManager(codec, "left")
	_, err := lm.CreateOrUpdateItem(ctx, "a", strPtr("A"), nil, "left")
	require.NoError(t, err)

	var buf bytes.Buffer
	codec.EXPECT().Name().Return("json").Maybe()
	codec.EXPECT().Encode(&buf, mock.Anything).RunAndReturn(func(w io.Writer, doc *entity.LayoutDocument) error {
		assert.Equal(t, 1, doc.CountItems())
		_, err := io.WriteString(w, "encoded")
		return err
	}).Once()

	require.NoError(t, lm.SaveLayout(ctx, &buf))
	assert.Equal(t, "encoded", buf.String())
}

func TestSaveLayout_WrapsCodecError(t *testing.T) {
	ctx := testContext()
	codec := portmocks.NewMockLayoutCodec(t)
	lm, _ := newTestLayoutManager(codec, "left")
	boom := errors.New("disk full")

	codec.EXPECT().Name().Return("yaml")
	codec.EXPECT().Encode(mock.Anything, mock.Anything).Return(boom)

	err := lm.SaveLayout(ctx, io.Discard)

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "save layout as yaml")
}

func TestLoadLayout(t *testing.T) {
	t.Run("applies the decoded document", func(t *testing.T) {
		ctx := testContext()
		codec := portmocks.NewMockLayoutCodec(t)
		lm, _ := newTestLayoutManager(codec, "left")
		input := strings.NewReader("{}")

		codec.EXPECT().Decode(input).Return(validDocument(), nil).Once()

		require.NoError(t, lm.LoadLayout(ctx, input))
		assert.NotNil(t, lm.Control().FindItem("a"))
		assert.NotNil(t, lm.Control().FindItem("b"))
	})

	t.Run("decode failure leaves the control alone", func(t *testing.T) {
		ctx := testContext()
		codec := portmocks.NewMockLayoutCodec(t)
		lm, _ := newTestLayoutManager(codec, "left")
		previous := lm.Control()
		boom := errors.New("unexpected EOF")

		codec.EXPECT().Decode(mock.Anything).Return(nil, boom)
		codec.EXPECT().Name().Return("toml")

		err := lm.LoadLayout(ctx, strings.NewReader(""))

		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "load layout as toml")
		assert.Same(t, previous, lm.Control())
	})
}

func TestApplyLayout_MinimizedOnlyWorkspaceKeepsDropTarget(t *testing.T) {
	ctx := testContext()
	lm, _ := newTestLayoutManager(nil, "left")

	doc := validDocument()
	doc.PrimaryWorkspace.DockTree.Children = []entity.NodeDocument{{Type: entity.NodeDocumentTab, ID: "t1"}}
	doc.PrimaryWorkspace.DockTree.Sizes = nil
	doc.PrimaryWorkspace.Minimized = []entity.ItemDocument{{ID: "m", Panel: "t1"}}

	require.NoError(t, lm.ApplyLayout(ctx, doc))

	cm := lm.Control()
	requireValidControl(t, cm)
	assert.Equal(t, "H[T()]", shape(cm.PrimaryWorkspace().Tree()))
	assert.True(t, cm.PrimaryWorkspace().IsMinimized(cm.FindItem("m")))

	_, err := cm.Restore(ctx, cm.FindItem("m"))
	require.NoError(t, err)
	assert.Equal(t, "H[T(m)]", shape(cm.PrimaryWorkspace().Tree()))
}
