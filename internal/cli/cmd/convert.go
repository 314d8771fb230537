package cmd

import (
	"github.com/spf13/cobra"
)

var convertRaw bool

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a layout between JSON, YAML and TOML",
	Long: `Read a layout and write it in the format given by the output extension.

The layout is normalized on the way through unless --raw is set. Use "-" for
stdin or stdout; they use layout.default_format.

Examples:
  dockyard convert layout.json layout.yaml
  dockyard convert --raw layout.toml -`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().BoolVar(&convertRaw, "raw", false, "copy the document without normalizing it")
}

func runConvert(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	in, out := args[0], args[1]

	if convertRaw {
		doc, err := app.ReadLayout(in)
		if err != nil {
			return err
		}
		return app.WriteLayout(out, doc)
	}

	lm, err := app.OpenLayout(in)
	if err != nil {
		return err
	}
	return writeBack(app, lm, in, out)
}
