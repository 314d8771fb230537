package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  `Show where the config file lives and the values in effect after defaults and DOCKYARD_* overrides.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path and the XDG directories in use",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if app.ConfigManager == nil {
		return fmt.Errorf("config file location is unknown")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "config:   %s\n", app.ConfigManager.GetConfigFile())
	fmt.Fprintf(out, "database: %s\n", app.Config.Database.Path)
	for _, dir := range []struct {
		name string
		get  func() (string, error)
	}{
		{"data", app.Dirs.DataDir},
		{"state", app.Dirs.StateDir},
	} {
		path, err := dir.get()
		if err != nil {
			return fmt.Errorf("%s dir: %w", dir.name, err)
		}
		fmt.Fprintf(out, "%-9s %s\n", dir.name+":", path)
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	return toml.NewEncoder(cmd.OutOrStdout()).Encode(app.Config)
}
