package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

var (
	itemOut   string
	itemForce bool

	floatX, floatY          int
	floatWidth, floatHeight float64
)

// itemAction applies one control operation. force skips the item's
// disable flags.
type itemAction func(ctx context.Context, cm *usecase.ControlManager, item *entity.DockItem, force bool) (usecase.ItemChange, error)

type itemCommand struct {
	use    string
	short  string
	long   string
	gated  bool // honor the item's disable flags unless --force is set
	action itemAction
}

var itemCommands = []itemCommand{
	{
		use:   "hide",
		short: "Hide an item",
		long:  "Take an item out of its workspace. show puts it back where it was.",
		gated: true,
		action: func(ctx context.Context, cm *usecase.ControlManager, item *entity.DockItem, force bool) (usecase.ItemChange, error) {
			if force {
				return cm.Hide(ctx, item)
			}
			return cm.RequestHide(ctx, item)
		},
	},
	{
		use:   "show",
		short: "Show a hidden item",
		long:  "Put a hidden item back into the tab group it was hidden from, or the nearest one left.",
		action: func(ctx context.Context, cm *usecase.ControlManager, item *entity.DockItem, _ bool) (usecase.ItemChange, error) {
			return cm.Show(ctx, item)
		},
	},
	{
		use:   "close",
		short: "Close an item",
		long:  "Remove an item from the layout.",
		gated: true,
		action: func(ctx context.Context, cm *usecase.ControlManager, item *entity.DockItem, force bool) (usecase.ItemChange, error) {
			if force {
				return cm.Close(ctx, item)
			}
			return cm.RequestClose(ctx, item)
		},
	},
	{
		use:   "minimize",
		short: "Minimize an item",
		long:  "Move an item to its workspace's minimized list.",
		gated: true,
		action: func(ctx context.Context, cm *usecase.ControlManager, item *entity.DockItem, force bool) (usecase.ItemChange, error) {
			if force {
				return cm.Minimize(ctx, item)
			}
			return cm.RequestMinimize(ctx, item)
		},
	},
	{
		use:   "restore",
		short: "Restore a minimized item",
		long:  "Put a minimized item back into the tab group it was minimized from.",
		action: func(ctx context.Context, cm *usecase.ControlManager, item *entity.DockItem, _ bool) (usecase.ItemChange, error) {
			return cm.Restore(ctx, item)
		},
	},
}

var floatCmd = &cobra.Command{
	Use:   "float <file> <item>",
	Short: "Float an item in its own window",
	Long: `Move an item into a new floating workspace.

Examples:
  dockyard float layout.json console
  dockyard float layout.json console --x 100 --y 80 --width 640 --height 360`,
	Args: cobra.ExactArgs(2),
	RunE: runFloat,
}

func init() {
	for _, ic := range itemCommands {
		rootCmd.AddCommand(newItemCommand(ic))
	}

	rootCmd.AddCommand(floatCmd)
	floatCmd.Flags().IntVar(&floatX, "x", 0, "window left edge")
	floatCmd.Flags().IntVar(&floatY, "y", 0, "window top edge")
	floatCmd.Flags().Float64Var(&floatWidth, "width", 0, "window width (default layout.float_width)")
	floatCmd.Flags().Float64Var(&floatHeight, "height", 0, "window height (default layout.float_height)")
	floatCmd.Flags().StringVarP(&itemOut, "out", "o", "", "write the result here instead of the input file")
}

func newItemCommand(ic itemCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   ic.use + " <file> <item>",
		Short: ic.short,
		Long:  ic.long + " The file is rewritten unless --out is given.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runItemCommand(cmd, ic, args[0], args[1])
		},
	}
	cmd.Flags().StringVarP(&itemOut, "out", "o", "", "write the result here instead of the input file")
	if ic.gated {
		cmd.Flags().BoolVar(&itemForce, "force", false, "ignore the item's disable flags")
	}
	return cmd
}

func runItemCommand(cmd *cobra.Command, ic itemCommand, path, itemID string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	lm, err := app.OpenLayout(path)
	if err != nil {
		return err
	}
	item, err := findItem(lm, itemID)
	if err != nil {
		return err
	}

	ctx := logging.WithItemID(app.Ctx(), itemID)
	change, err := ic.action(ctx, lm.Control(), item, itemForce)
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().
		Str("action", ic.use).
		Int("entered", len(change.Entered)).
		Int("left", len(change.Left)).
		Msg("item updated")

	if err := writeBack(app, lm, path, itemOut); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", ic.use, itemID)
	return nil
}

func runFloat(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	path, itemID := args[0], args[1]

	lm, err := app.OpenLayout(path)
	if err != nil {
		return err
	}
	item, err := findItem(lm, itemID)
	if err != nil {
		return err
	}

	var location *entity.Point
	if cmd.Flags().Changed("x") || cmd.Flags().Changed("y") {
		location = &entity.Point{X: floatX, Y: floatY}
	}
	size := app.Config.Layout.FloatSize()
	if floatWidth > 0 {
		size.Width = floatWidth
	}
	if floatHeight > 0 {
		size.Height = floatHeight
	}

	ctx := logging.WithItemID(app.Ctx(), itemID)
	ws, err := lm.Control().FloatItem(ctx, item, location, &size)
	if err != nil {
		return err
	}
	logging.FromContext(logging.WithWorkspaceID(ctx, string(ws.ID()))).Debug().
		Float64("width", size.Width).
		Float64("height", size.Height).
		Msg("floating window created")

	if err := writeBack(app, lm, path, itemOut); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "float: %s in workspace %s\n", itemID, ws.ID())
	return nil
}
