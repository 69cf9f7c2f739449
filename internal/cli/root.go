// Package cli defines the gantt command tree.
package cli

import (
	"fmt"

	"github.com/alexanderramin/compactgantt/internal/config"
	"github.com/alexanderramin/compactgantt/internal/service"
	"github.com/spf13/cobra"
)

// App holds what the commands need. Charts is built by the caller from
// Config; NewCharts, when set, rebuilds it after --config loads a
// different configuration.
type App struct {
	Charts       service.ChartService
	Config       config.EngineConfig
	ConfigSource string
	NewCharts    func(cfg config.EngineConfig) service.ChartService
	Logs         *LogSink
}

// NewRootCmd creates the top-level "gantt" command.
func NewRootCmd(app *App) *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:           "gantt",
		Short:         "Compact multi-window Gantt chart renderer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose && app.Logs != nil {
				app.Logs.Enable(cmd.ErrOrStderr())
			}
			if configPath == "" {
				return nil
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			app.Config = cfg
			app.ConfigSource = configPath
			if app.NewCharts != nil {
				app.Charts = app.NewCharts(cfg)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Engine configuration YAML file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log use cases and layout fallbacks to stderr")

	root.AddCommand(
		newRenderCmd(app),
		newProjectCmd(app),
		newConfigCmd(app),
	)
	return root
}
