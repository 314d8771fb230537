package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/validation"
	"github.com/bnema/dockyard/internal/logging"
)

// DefaultPlaceholder stands in for item titles and contexts that a layout
// document does not carry.
const DefaultPlaceholder = "Loading..."

// BuildLayout captures the live state of a control as a layout document.
// Item contexts are not captured.
func BuildLayout(cm *ControlManager) *entity.LayoutDocument {
	doc := entity.NewLayoutDocument()
	doc.PrimaryWorkspace = workspaceDocument(cm.PrimaryWorkspace())

	for _, item := range cm.HiddenItems() {
		doc.Hidden = append(doc.Hidden, itemDocument(item))
	}

	for _, rec := range cm.secondaries {
		pos := rec.window.Position()
		size := rec.window.Size()
		doc.SecondaryWorkspaces = append(doc.SecondaryWorkspaces, entity.WindowDocument{
			Left:      pos.X,
			Top:       pos.Y,
			Width:     size.Width,
			Height:    size.Height,
			Workspace: workspaceDocument(rec.workspace),
		})
	}
	return doc
}

func workspaceDocument(ws *WorkspaceManager) *entity.WorkspaceDocument {
	tree := nodeDocument(ws.Tree())
	out := &entity.WorkspaceDocument{
		ID:       string(ws.ID()),
		DockTree: &tree,
	}
	for _, item := range ws.MinimizedItems() {
		out.Minimized = append(out.Minimized, itemDocument(item))
	}
	return out
}

func nodeDocument(node entity.Node) entity.NodeDocument {
	switch n := node.(type) {
	case *entity.SplitNode:
		out := entity.NodeDocument{
			Type:        entity.NodeDocumentSplit,
			ID:          string(n.ID),
			Orientation: n.Orientation,
			Sizes:       n.NormalizedSizes(),
		}
		for _, child := range n.Children() {
			out.Children = append(out.Children, nodeDocument(child))
		}
		return out
	case *entity.TabNode:
		out := entity.NodeDocument{
			Type: entity.NodeDocumentTab,
			ID:   string(n.ID),
		}
		if selected := n.Selected(); selected != nil {
			out.SelectedID = string(selected.ID)
		}
		for _, item := range n.Tabs() {
			out.Tabs = append(out.Tabs, itemDocument(item))
		}
		return out
	default:
		panic(fmt.Sprintf("usecase: unexpected node type %T", node))
	}
}

func itemDocument(item *entity.DockItem) entity.ItemDocument {
	return entity.ItemDocument{
		ID:              string(item.ID),
		Title:           item.Title,
		DisableClose:    item.DisableClose,
		DisableHide:     item.DisableHide,
		DisableMaximize: item.DisableMaximize,
		DisableMinimize: item.DisableMinimize,
		Panel:           string(item.PreferredTabNode),
		Workspace:       string(item.PreferredWorkspace),
	}
}

// layoutBuilder turns a document into a fresh control. It never touches a
// live control.
type layoutBuilder struct {
	idGenerator IDGenerator
	placeholder string
}

// BuildControl builds a new control from doc. Items get placeholder as their
// context, and as their title when the document has none. Floating windows
// keep their saved position only when the main window reports it on screen.
func BuildControl(ctx context.Context, doc *entity.LayoutDocument, windows *WindowManager, idGenerator IDGenerator, placeholder string) (*ControlManager, error) {
	if doc == nil {
		return nil, fmt.Errorf("layout document is required")
	}
	if doc.Major != entity.LayoutVersionMajor {
		return nil, fmt.Errorf("layout %d.%d.%d: %w", doc.Major, doc.Minor, doc.Patch, entity.ErrUnsupportedVersion)
	}
	if errs := validation.ValidateLayoutDocument(doc); len(errs) > 0 {
		return nil, fmt.Errorf("%w:\n  - %s", entity.ErrMalformedLayout, strings.Join(errs, "\n  - "))
	}
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}

	b := &layoutBuilder{idGenerator: idGenerator.orDefault(), placeholder: placeholder}

	primary, err := b.workspace(ctx, doc.PrimaryWorkspace)
	if err != nil {
		return nil, fmt.Errorf("primary workspace: %w", err)
	}
	cm := NewControlManager(primary, windows, b.idGenerator)

	for _, itemDoc := range doc.Hidden {
		if err := cm.AddHiddenItem(b.item(itemDoc)); err != nil {
			return nil, fmt.Errorf("hidden items: %w", err)
		}
	}

	type pendingWindow struct {
		workspace *WorkspaceManager
		doc       entity.WindowDocument
	}
	pending := make([]pendingWindow, 0, len(doc.SecondaryWorkspaces))
	for i, windowDoc := range doc.SecondaryWorkspaces {
		if windowDoc.Workspace == nil {
			continue
		}
		ws, err := b.workspace(ctx, windowDoc.Workspace)
		if err != nil {
			return nil, fmt.Errorf("secondary workspace %d: %w", i, err)
		}
		pending = append(pending, pendingWindow{workspace: ws, doc: windowDoc})
	}

	for i, p := range pending {
		size := entity.Size{Width: p.doc.Width, Height: p.doc.Height}
		if size.Width <= 0 || size.Height <= 0 {
			size = entity.DefaultFloatSize
		}

		var location *entity.Point
		pos := entity.Point{X: p.doc.Left, Y: p.doc.Top}
		if main := windows.MainWindow(); main != nil && main.IsOnScreen(entity.RectFrom(pos, size)) {
			location = &pos
		}

		if _, err := cm.AttachSecondaryWorkspace(ctx, p.workspace, location, size); err != nil {
			cm.discardSecondaries(ctx)
			return nil, fmt.Errorf("secondary workspace %d: %w", i, err)
		}
	}

	for _, ws := range cm.Workspaces() {
		cm.EnsureWorkspaceHasTabNode(ctx, ws)
	}

	logging.FromContext(ctx).Debug().
		Int("secondary_count", len(pending)).
		Int("hidden_count", len(doc.Hidden)).
		Int("item_count", doc.CountItems()).
		Msg("layout built")

	return cm, nil
}

func (b *layoutBuilder) workspace(ctx context.Context, doc *entity.WorkspaceDocument) (*WorkspaceManager, error) {
	id := entity.WorkspaceID(doc.ID)
	if id == "" {
		id = entity.WorkspaceID(b.idGenerator())
	}

	if doc.DockTree == nil {
		return NewWorkspaceManager(id, entity.NewSplitNode(entity.NodeID(b.idGenerator()), entity.Horizontal), b.idGenerator), nil
	}

	root, err := b.split(doc.DockTree)
	if err != nil {
		return nil, err
	}
	ws := NewWorkspaceManager(id, root, b.idGenerator)

	for _, itemDoc := range doc.Minimized {
		item := b.item(itemDoc)
		if _, err := ws.AddItem(ctx, item); err != nil {
			return nil, fmt.Errorf("minimized item %q: %w", item.ID, err)
		}
		if !item.CanMinimize() {
			continue
		}
		if _, err := ws.Minimize(ctx, item); err != nil {
			return nil, fmt.Errorf("minimized item %q: %w", item.ID, err)
		}
		// Minimize records the tab node it parked in; keep the saved one so
		// restore still aims at the original group.
		if itemDoc.Panel != "" {
			item.PreferredTabNode = entity.NodeID(itemDoc.Panel)
		}
	}
	return ws, nil
}

func (b *layoutBuilder) node(doc *entity.NodeDocument) (entity.Node, error) {
	switch doc.Type {
	case entity.NodeDocumentSplit:
		return b.split(doc)
	case entity.NodeDocumentTab:
		return b.tab(doc), nil
	default:
		return nil, fmt.Errorf("%w: unknown node type %q", entity.ErrMalformedLayout, doc.Type)
	}
}

func (b *layoutBuilder) split(doc *entity.NodeDocument) (*entity.SplitNode, error) {
	id := entity.NodeID(doc.ID)
	if id == "" {
		id = entity.NodeID(b.idGenerator())
	}
	split := entity.NewSplitNode(id, doc.Orientation)

	sizes := doc.Sizes
	if len(sizes) == 0 {
		sizes = make([]float64, len(doc.Children))
		for i := range sizes {
			sizes[i] = entity.DefaultSize
		}
	}
	if len(sizes) != len(doc.Children) {
		return nil, fmt.Errorf("split %q: %w: %d children, %d sizes", id, entity.ErrSizeMismatch, len(doc.Children), len(sizes))
	}

	for i := range doc.Children {
		child, err := b.node(&doc.Children[i])
		if err != nil {
			return nil, err
		}
		split.AddChild(child, sizes[i])
	}
	return split, nil
}

func (b *layoutBuilder) tab(doc *entity.NodeDocument) *entity.TabNode {
	id := entity.NodeID(doc.ID)
	if id == "" {
		id = entity.NodeID(b.idGenerator())
	}
	tab := entity.NewTabNode(id)
	for _, itemDoc := range doc.Tabs {
		tab.AddTab(b.item(itemDoc))
	}
	if doc.SelectedID != "" {
		tab.Select(entity.ItemID(doc.SelectedID))
	}
	return tab
}

func (b *layoutBuilder) item(doc entity.ItemDocument) *entity.DockItem {
	title := doc.Title
	if title == "" {
		title = b.placeholder
	}
	item := entity.NewDockItem(entity.ItemID(doc.ID), title)
	item.Context = b.placeholder
	item.DisableClose = doc.DisableClose
	item.DisableHide = doc.DisableHide
	item.DisableMaximize = doc.DisableMaximize
	item.DisableMinimize = doc.DisableMinimize
	item.PreferredTabNode = entity.NodeID(doc.Panel)
	item.PreferredWorkspace = entity.WorkspaceID(doc.Workspace)
	return item
}
