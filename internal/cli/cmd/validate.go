package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/cli/styles"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check layout files",
	Long: `Check that each layout file decodes and builds into a sound layout.

Files that load but would be reshaped by normalization (for example empty
tab groups or single-child splits) pass with a warning. The command exits
non-zero when any file fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	results := validateFiles(app.Ctx(), app, args)
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewReportRenderer(app.Theme).Render(results))

	failed := 0
	for _, res := range results {
		if !res.OK() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d layout(s) failed validation", failed)
	}
	return nil
}

// validateFiles checks paths concurrently. Results keep the order of paths.
func validateFiles(ctx context.Context, app *cli.App, paths []string) []styles.ValidationResult {
	results := make([]styles.ValidationResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			results[i] = validateFile(gctx, app, path)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func validateFile(ctx context.Context, app *cli.App, path string) styles.ValidationResult {
	res := styles.ValidationResult{Path: path}

	doc, err := app.ReadLayout(path)
	if err != nil {
		res.Err = err
		return res
	}

	report, err := app.Validator.Execute(ctx, doc)
	if err != nil {
		res.Err = err
		return res
	}
	res.Problems = report.Problems
	res.Reshaped = report.Reshaped
	res.Workspaces = report.Workspaces
	res.Items = report.Items
	res.Hidden = report.Hidden
	res.Minimized = report.Minimized
	return res
}
