package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

var (
	moveOrientation string
	moveOut         string
)

var moveCmd = &cobra.Command{
	Use:   "move <file> <item> <target-node> <zone>",
	Short: "Drop an item onto a node",
	Long: `Move an item relative to a tab or split node, the way a drag and drop would.

Zones: center joins the target tab group; left, right, top and bottom split
the target. The file is rewritten unless --out is given.

Examples:
  dockyard move layout.json editor right-panel center
  dockyard move layout.json console main bottom --orientation Vertical`,
	Args: cobra.ExactArgs(4),
	RunE: runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
	moveCmd.Flags().StringVar(&moveOrientation, "orientation", "", "reject edge drops that would create a split with another orientation")
	moveCmd.Flags().StringVarP(&moveOut, "out", "o", "", "write the result here instead of the input file")
}

func runMove(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	path, itemID, nodeID, zoneName := args[0], args[1], args[2], args[3]

	zone, err := entity.ParseDropZone(zoneName)
	if err != nil {
		return err
	}
	opts := usecase.MoveOptions{DropZone: zone}
	if moveOrientation != "" {
		if opts.RequiredOrientation, err = entity.ParseOrientation(moveOrientation); err != nil {
			return err
		}
	}

	lm, err := app.OpenLayout(path)
	if err != nil {
		return err
	}
	item, err := findItem(lm, itemID)
	if err != nil {
		return err
	}
	target := lm.Control().FindNode(entity.NodeID(nodeID))
	if target == nil {
		return fmt.Errorf("node %q: %w", nodeID, entity.ErrNodeNotFound)
	}

	ctx := logging.With(app.Ctx(), map[string]any{"item_id": itemID, "node_id": nodeID, "zone": zone.String()})
	moved, err := lm.Control().MoveItem(ctx, item, target, opts)
	if err != nil {
		return err
	}
	if !moved {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s was not moved\n", itemID)
		return nil
	}
	return writeBack(app, lm, path, moveOut)
}
