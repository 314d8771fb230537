package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// commitLayout collapses empty panels in every workspace so the snapshot is
// what a renderer would show after the change.
func commitLayout(ctx context.Context, lm *usecase.LayoutManager) {
	cm := lm.Control()
	for _, ws := range cm.Workspaces() {
		ws.CommitChanges(true)
		cm.EnsureWorkspaceHasTabNode(ctx, ws)
	}
}

func findItem(lm *usecase.LayoutManager, id string) (*entity.DockItem, error) {
	item := lm.Control().FindItem(entity.ItemID(id))
	if item == nil {
		return nil, fmt.Errorf("item %q: %w", id, entity.ErrItemNotFound)
	}
	return item, nil
}

// writeBack stores the committed layout in out, or back into path when out
// is empty.
func writeBack(app *cli.App, lm *usecase.LayoutManager, path, out string) error {
	commitLayout(app.Ctx(), lm)
	if out == "" {
		out = path
	}
	return app.WriteLayout(out, lm.Snapshot())
}
