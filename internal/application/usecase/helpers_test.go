package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/window"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTestIDGen() usecase.IDGenerator {
	counter := 0
	return func() string {
		counter++
		return fmt.Sprintf("id%d", counter)
	}
}

func newTestWindows() (*usecase.WindowManager, *window.Factory) {
	factory := window.NewFactory()
	return usecase.NewWindowManager(factory), factory
}

func item(id string) *entity.DockItem {
	return entity.NewDockItem(entity.ItemID(id), strings.ToUpper(id))
}

func tab(id string, items ...*entity.DockItem) *entity.TabNode {
	node := entity.NewTabNode(entity.NodeID(id))
	for _, it := range items {
		node.AddTab(it)
	}
	return node
}

func split(id string, orientation entity.Orientation, children ...entity.Node) *entity.SplitNode {
	node := entity.NewSplitNode(entity.NodeID(id), orientation)
	for _, child := range children {
		node.AddChild(child, entity.DefaultSize)
	}
	return node
}

// newTestControl builds a control whose primary workspace "primary" has root
// as its tree.
func newTestControl(root *entity.SplitNode) (*usecase.ControlManager, *window.Factory) {
	windows, factory := newTestWindows()
	ids := newTestIDGen()
	primary := usecase.NewWorkspaceManager("primary", root, ids)
	return usecase.NewControlManager(primary, windows, ids), factory
}

// shape renders a tree compactly: H[...] and V[...] for splits, T(a,b) for
// tab nodes.
func shape(node entity.Node) string {
	switch n := node.(type) {
	case *entity.SplitNode:
		parts := make([]string, 0, n.Len())
		for _, child := range n.Children() {
			parts = append(parts, shape(child))
		}
		prefix := "H"
		if n.Orientation == entity.Vertical {
			prefix = "V"
		}
		return prefix + "[" + strings.Join(parts, " ") + "]"
	case *entity.TabNode:
		ids := make([]string, 0, n.Len())
		for _, it := range n.Tabs() {
			ids = append(ids, string(it.ID))
		}
		return "T(" + strings.Join(ids, ",") + ")"
	default:
		return "?"
	}
}

// requireValidControl checks the structural invariants of every workspace
// and that no item is owned twice.
func requireValidControl(t *testing.T, cm *usecase.ControlManager) {
	t.Helper()
	for _, ws := range cm.Workspaces() {
		require.NoError(t, entity.CheckInvariants(ws.Tree()), "workspace %s", ws.ID())
	}
	seen := make(map[entity.ItemID]bool)
	for _, it := range cm.Items() {
		require.False(t, seen[it.ID], "item %s is owned twice", it.ID)
		seen[it.ID] = true
	}
}
