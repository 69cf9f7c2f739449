package cli

import (
	"fmt"

	"github.com/alexanderramin/compactgantt/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the engine configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective engine configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := app.ConfigSource
			if source == "" {
				source = "defaults"
			}
			out, err := formatter.FormatConfig(app.Config, source)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	})
	return cmd
}
