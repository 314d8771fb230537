package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
)

var inspectRaw bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show a layout as a tree",
	Long: `Load a layout file and print its workspaces, splits and tab groups.

By default the layout is built and normalized first, so the tree is what an
application would show. Use --raw to print the document exactly as written.

Examples:
  dockyard inspect layout.json
  dockyard inspect --raw layout.yaml
  cat layout.json | dockyard inspect -`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectRaw, "raw", false, "print the document without normalizing it")
}

func runInspect(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	var doc *entity.LayoutDocument
	if inspectRaw {
		doc, err = app.ReadLayout(args[0])
	} else {
		lm, openErr := app.OpenLayout(args[0])
		if openErr != nil {
			return openErr
		}
		commitLayout(app.Ctx(), lm)
		doc = lm.Snapshot()
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewTreeRenderer(app.Theme).Render(doc))
	return nil
}
