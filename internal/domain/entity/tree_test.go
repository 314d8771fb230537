package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() (*SplitNode, *TabNode, *TabNode, *SplitNode) {
	left := tabOf("left", "a", "b")
	right := tabOf("right", "c")
	inner := vertical("inner", right, tabOf("bottom", "d"))
	root := horizontal("root", left, inner)
	return root, left, right, inner
}

func TestFindFirstTabNode(t *testing.T) {
	root, left, _, _ := sampleTree()
	assert.Same(t, left, FindFirstTabNode(root))
	assert.Nil(t, FindFirstTabNode(NewSplitNode("empty", Horizontal)))
}

func TestFindOwningTabNode(t *testing.T) {
	root, left, right, _ := sampleTree()

	assert.Same(t, left, FindOwningTabNode(root, "b"))
	assert.Same(t, right, FindOwningTabNode(root, "c"))
	assert.Nil(t, FindOwningTabNode(root, "missing"))
	assert.Nil(t, FindOwningTabNode(root, ""))
}

func TestFindNode(t *testing.T) {
	root, _, right, inner := sampleTree()

	assert.Equal(t, Node(root), FindNode(root, "root"))
	assert.Equal(t, Node(inner), FindNode(root, "inner"))
	assert.Equal(t, Node(right), FindNode(root, "right"))
	assert.Nil(t, FindNode(root, "missing"))
}

func TestFindContainingSplit(t *testing.T) {
	root, left, right, inner := sampleTree()

	assert.Same(t, root, FindContainingSplit(root, left))
	assert.Same(t, inner, FindContainingSplit(root, right))
	assert.Same(t, root, FindContainingSplit(root, inner))
	assert.Nil(t, FindContainingSplit(root, root))
	assert.Nil(t, FindContainingSplit(root, NewTabNode("detached")))
}

func TestFindItemAndCollect(t *testing.T) {
	root, _, _, _ := sampleTree()

	item := FindItem(root, "d")
	require.NotNil(t, item)
	assert.Equal(t, ItemID("d"), item.ID)

	var ids []ItemID
	for _, it := range CollectItems(root) {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []ItemID{"a", "b", "c", "d"}, ids)
	assert.Len(t, CollectTabNodes(root), 3)

	splits, tabs := CountNodes(root)
	assert.Equal(t, 2, splits)
	assert.Equal(t, 3, tabs)
}

func TestCheckInvariants(t *testing.T) {
	root, _, _, _ := sampleTree()
	require.NoError(t, CheckInvariants(root))

	t.Run("same orientation nesting", func(t *testing.T) {
		bad := horizontal("root", tabOf("a", "1"), horizontal("h", tabOf("b", "2"), tabOf("c", "3")))
		err := CheckInvariants(bad)
		var invErr *InvariantError
		require.ErrorAs(t, err, &invErr)
		assert.Len(t, invErr.Violations, 1)
	})

	t.Run("duplicate item ids", func(t *testing.T) {
		bad := horizontal("root", tabOf("a", "1"), tabOf("b", "1"))
		require.Error(t, CheckInvariants(bad))
	})

	t.Run("no tab node", func(t *testing.T) {
		require.Error(t, CheckInvariants(NewSplitNode("root", Vertical)))
	})

	t.Run("empty nested split", func(t *testing.T) {
		bad := horizontal("root", tabOf("a", "1"), vertical("v"))
		require.Error(t, CheckInvariants(bad))
	})
}

func TestDropZone(t *testing.T) {
	zone, err := ParseDropZone("Left")
	require.NoError(t, err)
	assert.Equal(t, DropLeft, zone)
	assert.True(t, zone.IsEdge())
	assert.True(t, zone.InsertsBefore())

	o, ok := DropBottom.Orientation()
	require.True(t, ok)
	assert.Equal(t, Vertical, o)
	assert.False(t, DropBottom.InsertsBefore())

	_, ok = DropCenter.Orientation()
	assert.False(t, ok)

	_, err = ParseDropZone("diagonal")
	require.Error(t, err)
}

func TestParseInsertPolicy(t *testing.T) {
	p, err := ParseInsertPolicy("create-floating")
	require.NoError(t, err)
	assert.Equal(t, InsertCreateFloating, p)

	p, err = ParseInsertPolicy("")
	require.NoError(t, err)
	assert.Equal(t, DefaultInsertPolicy, p)

	_, err = ParseInsertPolicy("sideways")
	require.Error(t, err)
}

func TestRect(t *testing.T) {
	screen := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	assert.True(t, screen.Contains(Point{X: 10, Y: 10}))
	assert.False(t, screen.Contains(Point{X: 1920, Y: 10}))
	assert.True(t, screen.Intersects(RectFrom(Point{X: 1900, Y: 1000}, Size{Width: 300, Height: 200})))
	assert.False(t, screen.Intersects(RectFrom(Point{X: 4000, Y: 0}, DefaultFloatSize)))
}
