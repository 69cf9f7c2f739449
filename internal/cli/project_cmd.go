package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexanderramin/compactgantt/internal/cli/formatter"
	"github.com/alexanderramin/compactgantt/internal/export"
	"github.com/alexanderramin/compactgantt/internal/importer"
	"github.com/alexanderramin/compactgantt/internal/service"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage stored chart snapshots",
	}

	cmd.AddCommand(
		newProjectImportCmd(app),
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectHistoryCmd(app),
		newProjectExportCmd(app),
		newProjectRenderCmd(app),
		newProjectRemoveCmd(app),
	)
	return cmd
}

func newProjectImportCmd(app *App) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Store a JSON or YAML snapshot, adding a revision if the short ID exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Charts.ImportFile(cmd.Context(), args[0], note)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatImportSummary(res.Project, res.Created))
			return nil
		},
	}
	cmd.Flags().StringVar(&note, "note", "", "Note stored with the revision")
	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Charts.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectList(projects, time.Now()))
			return nil
		},
	}
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a stored project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Charts.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectShow(p))
			return nil
		},
	}
}

func newProjectHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history ID",
		Short: "List the stored revisions of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Charts.Get(ctx, args[0])
			if err != nil {
				return err
			}
			revs, err := app.Charts.History(ctx, p.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRevisionList(p, revs, time.Now()))
			return nil
		},
	}
}

func newProjectExportCmd(app *App) *cobra.Command {
	var (
		output   string
		encoding string
	)

	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "Write a stored project back out as a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := importer.Encoding(encoding)
			if encoding == "" {
				enc = importer.EncodingFromPath(output)
			}
			if enc != importer.EncodingJSON && enc != importer.EncodingYAML {
				return fmt.Errorf("unsupported snapshot encoding %q (want json or yaml)", encoding)
			}
			data, err := app.Charts.Export(cmd.Context(), args[0], enc)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing snapshot: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Exported "+args[0]+" to "+output))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Snapshot file (.json, .yaml); stdout when empty")
	cmd.Flags().StringVar(&encoding, "encoding", "", "json or yaml (default: from the output extension)")
	return cmd
}

func newProjectRenderCmd(app *App) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "render ID",
		Short: "Render a stored project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeChart(cmd, &out, func(ctx context.Context, f export.Format, w io.Writer) (*service.RenderResult, error) {
				return app.Charts.Render(ctx, args[0], f, w)
			})
		},
	}
	out.register(cmd.Flags())
	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a stored project and its revisions",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Charts.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Removed "+args[0]))
			return nil
		},
	}
}
