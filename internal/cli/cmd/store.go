package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/styles"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Keep named layouts in the local store",
	Long: `Save, load, list and delete named layouts.

Layouts are kept in a SQLite database under $XDG_DATA_HOME/dockyard
(database.path in the config). Saving an unchanged layout is a no-op.`,
}

var storeSaveCmd = &cobra.Command{
	Use:   "save <name> <file>",
	Short: "Store a layout file under a name",
	Args:  cobra.ExactArgs(2),
	RunE:  runStoreSave,
}

var storeLoadCmd = &cobra.Command{
	Use:   "load <name> [out]",
	Short: "Write a stored layout to a file or stdout",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runStoreLoad,
}

var storeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored layouts",
	Args:    cobra.NoArgs,
	RunE:    runStoreList,
}

var storeDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a stored layout",
	Args:    cobra.ExactArgs(1),
	RunE:    runStoreDelete,
}

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.AddCommand(storeSaveCmd, storeLoadCmd, storeListCmd, storeDeleteCmd)
}

func runStoreSave(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	name, path := args[0], args[1]

	lm, err := app.OpenLayout(path)
	if err != nil {
		return err
	}
	commitLayout(app.Ctx(), lm)

	out, err := app.Layouts.Save(app.Ctx(), name, lm.Snapshot())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewLayoutsRenderer(app.Theme).RenderSaved(out.Layout, out.Written))
	return nil
}

func runStoreLoad(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	out := "-"
	if len(args) == 2 {
		out = args[1]
	}

	layout, err := app.Layouts.Load(app.Ctx(), args[0])
	if err != nil {
		return err
	}
	return app.WriteLayout(out, layout.Document)
}

func runStoreList(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	layouts, err := app.Layouts.List(app.Ctx())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewLayoutsRenderer(app.Theme).RenderList(layouts))
	return nil
}

func runStoreDelete(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if err := app.Layouts.Delete(app.Ctx(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
	return nil
}
