package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/compactgantt/internal/chart"
	"github.com/alexanderramin/compactgantt/internal/config"
	"github.com/alexanderramin/compactgantt/internal/domain"
	"github.com/alexanderramin/compactgantt/internal/importer"
	"github.com/alexanderramin/compactgantt/internal/service"
	"github.com/alexanderramin/compactgantt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roadmapFile = filepath.Join("..", "importer", "testdata", "roadmap.yaml")

// testApp wires a full App backed by an in-memory DB.
func testApp(t *testing.T) *App {
	t.Helper()
	conn := testutil.NewTestDB(t)
	logs := &LogSink{}
	observer := service.NewLogUseCaseObserver(logs)
	newCharts := func(cfg config.EngineConfig) service.ChartService {
		return service.NewChartService(conn, testutil.NewTestUoW(conn), chart.NewEngine(cfg), observer)
	}
	return &App{
		Charts:    newCharts(config.Default()),
		Config:    config.Default(),
		NewCharts: newCharts,
		Logs:      logs,
	}
}

// executeCmd runs the command tree and captures stdout and stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRenderCmd_WritesSVGFile(t *testing.T) {
	app := testApp(t)
	out := filepath.Join(t.TempDir(), "roadmap.svg")

	stdout, err := executeCmd(t, app, "render", roadmapFile, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Rendered ROAD25 to "+out)
	assert.Contains(t, stdout, "SVG")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("<?xml")))
}

func TestRenderCmd_Stdout(t *testing.T) {
	app := testApp(t)

	stdout, err := executeCmd(t, app, "render", roadmapFile, "-o", "-")
	require.NoError(t, err)
	assert.Contains(t, stdout, "<svg")
	assert.NotContains(t, stdout, "Rendered")
}

func TestRenderCmd_FormatFlagOverridesExtension(t *testing.T) {
	app := testApp(t)
	out := filepath.Join(t.TempDir(), "chart.out")

	_, err := executeCmd(t, app, "render", roadmapFile, "-o", out, "--format", "png")
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), data[:4])
}

func TestRenderCmd_Errors(t *testing.T) {
	app := testApp(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing output", []string{"render", roadmapFile}, "--output is required"},
		{"unknown extension", []string{"render", roadmapFile, "-o", filepath.Join(dir, "x.gif")}, "unsupported output format"},
		{"unknown format", []string{"render", roadmapFile, "-o", "-", "--format", "bmp"}, "unsupported output format"},
		{"missing file", []string{"render", filepath.Join(dir, "nope.yaml"), "-o", "-"}, "loading snapshot file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCmd(t, app, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRenderCmd_FailureLeavesNoOutputFile(t *testing.T) {
	app := testApp(t)
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("project: {short_id: BAD1, name: Bad}\nwindows: []\n"), 0o644))

	fresh := filepath.Join(dir, "fresh.svg")
	_, err := executeCmd(t, app, "render", bad, "-o", fresh)
	require.Error(t, err)
	assert.NoFileExists(t, fresh)

	existing := filepath.Join(dir, "existing.svg")
	require.NoError(t, os.WriteFile(existing, []byte("<svg/>"), 0o644))
	_, err = executeCmd(t, app, "render", bad, "-o", existing)
	require.Error(t, err)
	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))
}

func TestProjectCmd_ImportListShowRemove(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No projects found.")

	out, err = executeCmd(t, app, "project", "import", roadmapFile, "--note", "first cut")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported Product roadmap [ROAD25] revision 1")

	out, err = executeCmd(t, app, "project", "import", roadmapFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Updated Product roadmap [ROAD25] revision 2")

	out, err = executeCmd(t, app, "project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ROAD25")
	assert.Contains(t, out, "r2")

	out, err = executeCmd(t, app, "project", "show", "road25")
	require.NoError(t, err)
	assert.Contains(t, out, "PRODUCT ROADMAP")
	assert.Contains(t, out, "1200 × 500")

	out, err = executeCmd(t, app, "project", "history", "ROAD25")
	require.NoError(t, err)
	assert.Contains(t, out, "first cut")
	assert.Contains(t, out, "r2 *")

	out, err = executeCmd(t, app, "project", "remove", "ROAD25")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed ROAD25")

	_, err = executeCmd(t, app, "project", "show", "ROAD25")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectCmd_RenderStored(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "project", "import", roadmapFile)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "roadmap.jpg")
	stdout, err := executeCmd(t, app, "project", "render", "ROAD25", "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "JPEG")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8}, data[:2])
}

func TestProjectCmd_Export(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "project", "import", roadmapFile)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "roadmap.yaml")
	_, err = executeCmd(t, app, "project", "export", "ROAD25", "-o", path)
	require.NoError(t, err)

	schema, err := importer.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ROAD25", schema.Project.ShortID)
	assert.Empty(t, importer.Validate(schema, config.Default().ProportionTolerance))

	out, err := executeCmd(t, app, "project", "export", "ROAD25", "--encoding", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"short_id": "ROAD25"`)

	_, err = executeCmd(t, app, "project", "export", "ROAD25", "--encoding", "toml")
	assert.Error(t, err)
}

func TestConfigCmd_Show(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "source: defaults")
	assert.Contains(t, out, "min_cell_width: 5")
}

func TestConfigFlag_ReloadsEngine(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("thresholds:\n  min_cell_width: 8\n"), 0o644))

	out, err := executeCmd(t, app, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "source: "+path)
	assert.Contains(t, out, "min_cell_width: 8")
	assert.Contains(t, out, "short_label_width: 20")

	_, err = executeCmd(t, app, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "config", "show")
	assert.ErrorContains(t, err, "loading config")
}

func TestVerboseFlag_LogsUseCases(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "--verbose", "project", "import", roadmapFile)
	require.NoError(t, err)
	assert.Contains(t, out, "use_case=import-project")
	assert.Contains(t, out, "short_id=ROAD25")
}

func TestLogSink_DiscardsUntilEnabled(t *testing.T) {
	var sink LogSink
	n, err := sink.Write([]byte("dropped"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	var buf bytes.Buffer
	sink.Enable(&buf)
	_, _ = sink.Write([]byte("kept"))
	assert.Equal(t, "kept", buf.String())
}
