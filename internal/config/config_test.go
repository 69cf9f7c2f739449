package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5.0, cfg.Thresholds.MinCellWidth)
	assert.Equal(t, 20.0, cfg.Thresholds.ShortLabelWidth)
	assert.Equal(t, 50.0, cfg.Thresholds.FullLabelWidth)
	assert.Equal(t, 0.8, cfg.TaskHeightFactor)
}

func TestLoadFile_PartialOverridesKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
thresholds:
  full_label_width: 60
fonts:
  task_size: 12
`), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 60.0, cfg.Thresholds.FullLabelWidth)
	assert.Equal(t, 20.0, cfg.Thresholds.ShortLabelWidth)
	assert.Equal(t, 12.0, cfg.Fonts.TaskSize)
	assert.Equal(t, "Arial, sans-serif", cfg.Fonts.Family)
}

func TestLoadFile_RejectsInvertedThresholds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("thresholds:\n  short_label_width: 80\n"), 0644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "thresholds")
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("GANTT_FULL_LABEL_WIDTH", "70")
	t.Setenv("GANTT_TASK_FONT_SIZE", "not-a-number")
	t.Setenv("GANTT_FONT_FAMILY", "Go")

	cfg := LoadEnv(Default())

	assert.Equal(t, 70.0, cfg.Thresholds.FullLabelWidth)
	assert.Equal(t, 10.0, cfg.Fonts.TaskSize)
	assert.Equal(t, "Go", cfg.Fonts.Family)
}

func TestLoadAppPaths(t *testing.T) {
	t.Setenv("GANTT_DB", "/tmp/charts.db")
	t.Setenv("GANTT_LOG_CALLS", "true")

	paths, err := LoadAppPaths()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/charts.db", paths.DBPath)
	assert.True(t, paths.LogCalls)
}
