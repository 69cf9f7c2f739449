package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/compactgantt/internal/export"
	"github.com/spf13/pflag"
)

// outputFlags are shared by every command that writes a chart.
type outputFlags struct {
	path   string
	format string
}

func (o *outputFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.path, "output", "o", "", "Output file (.svg, .png, .jpg); - writes to stdout")
	fs.StringVar(&o.format, "format", "", "Output format: svg, png or jpeg (default: from the output extension)")
}

// resolve picks the output format. An explicit --format wins over the file
// extension; stdout defaults to SVG.
func (o *outputFlags) resolve() (export.Format, error) {
	if o.path == "" {
		return "", fmt.Errorf("--output is required")
	}
	if o.format != "" {
		return export.ParseFormat(o.format)
	}
	if o.path == "-" {
		return export.FormatSVG, nil
	}
	return export.FormatFromPath(o.path)
}

// write sends a finished chart to stdout or replaces the output file. The
// file is only touched once the render has succeeded.
func (o *outputFlags) write(stdout io.Writer, chart []byte) error {
	if o.path == "-" {
		_, err := stdout.Write(chart)
		return err
	}
	if err := os.WriteFile(o.path, chart, 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

func (o *outputFlags) toStdout() bool { return o.path == "-" }
