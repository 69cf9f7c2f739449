package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/compactgantt/internal/cli/formatter"
	"github.com/alexanderramin/compactgantt/internal/export"
	"github.com/alexanderramin/compactgantt/internal/service"
	"github.com/spf13/cobra"
)

func newRenderCmd(app *App) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a snapshot file without storing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeChart(cmd, &out, func(ctx context.Context, f export.Format, w io.Writer) (*service.RenderResult, error) {
				return app.Charts.RenderFile(ctx, args[0], f, w)
			})
		},
	}
	out.register(cmd.Flags())
	return cmd
}

type renderFunc func(ctx context.Context, f export.Format, w io.Writer) (*service.RenderResult, error)

// writeChart resolves the output, renders into memory and writes the chart
// out, printing a summary unless the chart itself went to stdout.
func writeChart(cmd *cobra.Command, out *outputFlags, render renderFunc) error {
	format, err := out.resolve()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	res, err := render(cmd.Context(), format, &buf)
	if err != nil {
		return err
	}
	if err := out.write(cmd.OutOrStdout(), buf.Bytes()); err != nil {
		return err
	}
	if !out.toStdout() {
		fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRenderSummary(res.Project, string(res.Format), out.path, res.Instructions))
	}
	return nil
}
