package usecase_test

import (
	"testing"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeMonitor_ReportsNestedAdditions(t *testing.T) {
	a, b, c := item("a"), item("b"), item("c")
	root := split("root", entity.Horizontal, tab("t1", a))

	var entered, left []entity.ItemID
	monitor := usecase.NewNodeMonitor(
		func(it *entity.DockItem) { entered = append(entered, it.ID) },
		func(it *entity.DockItem) { left = append(left, it.ID) },
	)

	change := monitor.Monitor(root)
	assert.Equal(t, []*entity.DockItem{a}, change.Entered)
	assert.Empty(t, change.Left)

	// A split added with tabs already inside is seen in one go.
	root.AddChild(split("inner", entity.Vertical, tab("t2", b), tab("t3", c)), entity.DefaultSize)
	change = monitor.Sync()

	assert.Equal(t, []*entity.DockItem{b, c}, change.Entered)
	assert.Equal(t, []entity.ItemID{"a", "b", "c"}, entered)
	assert.Empty(t, left)
}

func TestNodeMonitor_LeavesRunBeforeEnters(t *testing.T) {
	a, b := item("a"), item("b")
	t1 := tab("t1", a)
	root := split("root", entity.Horizontal, t1)

	var events []string
	monitor := usecase.NewNodeMonitor(
		func(it *entity.DockItem) { events = append(events, "enter:"+string(it.ID)) },
		func(it *entity.DockItem) { events = append(events, "leave:"+string(it.ID)) },
	)
	monitor.Monitor(root)
	events = nil

	t1.RemoveTab("a")
	t1.AddTab(b)
	change := monitor.Sync()

	assert.Equal(t, []string{"leave:a", "enter:b"}, events)
	assert.Equal(t, []*entity.DockItem{b}, change.Entered)
	assert.Equal(t, []*entity.DockItem{a}, change.Left)
}

func TestNodeMonitor_SyncWithoutChangesIsQuiet(t *testing.T) {
	root := split("root", entity.Horizontal, tab("t1", item("a")))
	calls := 0
	monitor := usecase.NewNodeMonitor(func(*entity.DockItem) { calls++ }, nil)
	monitor.Monitor(root)

	change := monitor.Sync()

	assert.True(t, change.IsEmpty())
	assert.Equal(t, 1, calls)
}

func TestNodeMonitor_MonitorTwiceIsNoop(t *testing.T) {
	root := split("root", entity.Horizontal, tab("t1", item("a")))
	monitor := usecase.NewNodeMonitor(nil, nil)

	monitor.Monitor(root)
	change := monitor.Monitor(root)

	assert.True(t, change.IsEmpty())
	assert.Len(t, monitor.Items(), 1)
}

func TestNodeMonitor_UnmonitorReportsLeft(t *testing.T) {
	a := item("a")
	root := split("root", entity.Horizontal, tab("t1", a))
	monitor := usecase.NewNodeMonitor(nil, nil)
	monitor.Monitor(root)

	change := monitor.Unmonitor(root)

	assert.Equal(t, []*entity.DockItem{a}, change.Left)
	assert.Empty(t, monitor.Items())
	assert.True(t, monitor.Unmonitor(root).IsEmpty())
}

func TestNodeMonitor_ReplaceKeepsSharedItems(t *testing.T) {
	a, b, c := item("a"), item("b"), item("c")
	oldRoot := split("old", entity.Horizontal, tab("t1", a, b))
	newRoot := split("new", entity.Vertical, tab("t2", b, c))

	monitor := usecase.NewNodeMonitor(nil, nil)
	monitor.Monitor(oldRoot)

	change := monitor.Replace(oldRoot, newRoot)

	assert.Equal(t, []*entity.DockItem{c}, change.Entered)
	assert.Equal(t, []*entity.DockItem{a}, change.Left)
	assert.Equal(t, []*entity.DockItem{b, c}, monitor.Items())
}

func TestItemChange_Merge(t *testing.T) {
	a, b, c := item("a"), item("b"), item("c")

	tests := []struct {
		name        string
		first       usecase.ItemChange
		second      usecase.ItemChange
		wantEntered []*entity.DockItem
		wantLeft    []*entity.DockItem
	}{
		{
			name:        "disjoint changes add up",
			first:       usecase.ItemChange{Entered: []*entity.DockItem{a}},
			second:      usecase.ItemChange{Left: []*entity.DockItem{b}},
			wantEntered: []*entity.DockItem{a},
			wantLeft:    []*entity.DockItem{b},
		},
		{
			name:     "a move cancels out",
			first:    usecase.ItemChange{Left: []*entity.DockItem{a}},
			second:   usecase.ItemChange{Entered: []*entity.DockItem{a}, Left: []*entity.DockItem{c}},
			wantLeft: []*entity.DockItem{c},
		},
		{
			name: "empty changes stay empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.first.Merge(tt.second)
			assert.Equal(t, tt.wantEntered, got.Entered)
			assert.Equal(t, tt.wantLeft, got.Left)
		})
	}

	require.True(t, usecase.ItemChange{}.IsEmpty())
}
