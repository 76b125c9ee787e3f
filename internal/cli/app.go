package cli

import (
	"github.com/spf13/cobra"
)

// App is the porquinho command line: the HTTP server plus a few one-shot
// commands that share its configuration and storage.
type App struct {
	rootCmd    *cobra.Command
	configFile string
	version    string
}

func NewApp(version string) *App {
	app := &App{version: version}

	rootCmd := &cobra.Command{
		Use:           "porquinho",
		Short:         "Porquinho personal finance dashboard",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate(`{{printf "porquinho version: %s\n" .Version}}`)
	rootCmd.PersistentFlags().StringVarP(&app.configFile, "config", "C", "", "Path to a YAML configuration file (default: $PORQUINHO_CONFIG_FILE)")

	rootCmd.AddCommand(
		app.serveCommand(),
		app.projectCommand(),
		app.syncCommand(),
		app.reportCommand(),
	)

	app.rootCmd = rootCmd
	return app
}

func (app *App) Execute() error {
	return app.rootCmd.Execute()
}

// SetArgs overrides os.Args, for tests.
func (app *App) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}
