// Package config holds the immutable settings handed to the chart engine:
// label thresholds, proportions, font sizes and fallback colours.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Thresholds struct {
	MinCellWidth    float64 `yaml:"min_cell_width"`
	ShortLabelWidth float64 `yaml:"short_label_width"`
	FullLabelWidth  float64 `yaml:"full_label_width"`
}

type Fonts struct {
	Family           string  `yaml:"family"`
	TaskSize         float64 `yaml:"task_size"`
	ScaleSize        float64 `yaml:"scale_size"`
	HeaderFooterSize float64 `yaml:"header_footer_size"`
	SwimlaneSize     float64 `yaml:"swimlane_size"`
	GlyphWidthFactor float64 `yaml:"glyph_width_factor"`
}

type Colors struct {
	Background    string `yaml:"background"`
	Text          string `yaml:"text"`
	TaskFill      string `yaml:"task_fill"`
	MilestoneFill string `yaml:"milestone_fill"`
	ShapeStroke   string `yaml:"shape_stroke"`
	Curtain       string `yaml:"curtain"`
	Pipe          string `yaml:"pipe"`
	Swimlane      string `yaml:"swimlane"`
	Connector     string `yaml:"connector"`
	Leader        string `yaml:"leader"`
	Band          string `yaml:"band"`
	BandStroke    string `yaml:"band_stroke"`
	Gridline      string `yaml:"gridline"`
	FrameBorder   string `yaml:"frame_border"`
}

type GridWeights struct {
	Year  float64 `yaml:"year"`
	Month float64 `yaml:"month"`
	Week  float64 `yaml:"week"`
	Day   float64 `yaml:"day"`
}

// EngineConfig is passed by value into the engine; nothing reads globals.
type EngineConfig struct {
	Thresholds          Thresholds  `yaml:"thresholds"`
	Fonts               Fonts       `yaml:"fonts"`
	Colors              Colors      `yaml:"colors"`
	GridWeights         GridWeights `yaml:"grid_weights"`
	TaskHeightFactor    float64     `yaml:"task_height_factor"`
	ProportionTolerance float64     `yaml:"proportion_tolerance"`
	LeaderLineWidth     float64     `yaml:"leader_line_width"`
	ConnectorWidth      float64     `yaml:"connector_width"`
	PipeWidth           float64     `yaml:"pipe_width"`
	FrameBorderWidth    float64     `yaml:"frame_border_width"`
	SwimlanePadding     float64     `yaml:"swimlane_padding"`
}

// Default returns the engine settings used when no file or env override applies.
func Default() EngineConfig {
	return EngineConfig{
		Thresholds: Thresholds{
			MinCellWidth:    5,
			ShortLabelWidth: 20,
			FullLabelWidth:  50,
		},
		Fonts: Fonts{
			Family:           "Arial, sans-serif",
			TaskSize:         10,
			ScaleSize:        10,
			HeaderFooterSize: 10,
			SwimlaneSize:     9,
			GlyphWidthFactor: 0.55,
		},
		Colors: Colors{
			Background:    "white",
			Text:          "black",
			TaskFill:      "#4a90d9",
			MilestoneFill: "#d0021b",
			ShapeStroke:   "black",
			Curtain:       "#f5c6cb",
			Pipe:          "red",
			Swimlane:      "#f2f2f2",
			Connector:     "black",
			Leader:        "black",
			Band:          "lightgrey",
			BandStroke:    "grey",
			Gridline:      "#d3d3d3",
			FrameBorder:   "black",
		},
		GridWeights: GridWeights{
			Year:  3,
			Month: 2,
			Week:  1.5,
			Day:   1,
		},
		TaskHeightFactor:    0.8,
		ProportionTolerance: 0.001,
		LeaderLineWidth:     1,
		ConnectorWidth:      1.5,
		PipeWidth:           2,
		FrameBorderWidth:    2,
		SwimlanePadding:     3,
	}
}

// LoadFile reads a YAML file over the defaults. Keys absent from the file
// keep their default values.
func LoadFile(path string) (EngineConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return EngineConfig{}, err
	}
	return cfg, nil
}

// LoadEnv applies GANTT_* environment overrides on top of cfg. Invalid
// values are ignored.
func LoadEnv(cfg EngineConfig) EngineConfig {
	applyFloatEnv(&cfg.Thresholds.MinCellWidth, "GANTT_MIN_CELL_WIDTH")
	applyFloatEnv(&cfg.Thresholds.ShortLabelWidth, "GANTT_SHORT_LABEL_WIDTH")
	applyFloatEnv(&cfg.Thresholds.FullLabelWidth, "GANTT_FULL_LABEL_WIDTH")
	applyFloatEnv(&cfg.Fonts.TaskSize, "GANTT_TASK_FONT_SIZE")
	applyFloatEnv(&cfg.Fonts.ScaleSize, "GANTT_SCALE_FONT_SIZE")
	applyFloatEnv(&cfg.TaskHeightFactor, "GANTT_TASK_HEIGHT_FACTOR")
	if v := os.Getenv("GANTT_FONT_FAMILY"); v != "" {
		cfg.Fonts.Family = v
	}
	return cfg
}

// Load resolves the effective engine config: defaults, then the optional
// YAML file, then environment overrides.
func Load(path string) (EngineConfig, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return EngineConfig{}, err
	}
	cfg = LoadEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return EngineConfig{}, err
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot work with.
func (c EngineConfig) Validate() error {
	t := c.Thresholds
	if t.MinCellWidth < 0 || t.ShortLabelWidth < t.MinCellWidth || t.FullLabelWidth < t.ShortLabelWidth {
		return fmt.Errorf("thresholds must satisfy 0 <= min_cell_width (%g) <= short_label_width (%g) <= full_label_width (%g)",
			t.MinCellWidth, t.ShortLabelWidth, t.FullLabelWidth)
	}
	if c.TaskHeightFactor <= 0 || c.TaskHeightFactor > 1 {
		return fmt.Errorf("task_height_factor must be in (0, 1], got %g", c.TaskHeightFactor)
	}
	if c.ProportionTolerance < 0 {
		return fmt.Errorf("proportion_tolerance must be non-negative, got %g", c.ProportionTolerance)
	}
	if c.Fonts.TaskSize <= 0 || c.Fonts.ScaleSize <= 0 || c.Fonts.HeaderFooterSize <= 0 {
		return fmt.Errorf("font sizes must be positive")
	}
	if c.Fonts.GlyphWidthFactor <= 0 {
		return fmt.Errorf("glyph_width_factor must be positive, got %g", c.Fonts.GlyphWidthFactor)
	}
	return nil
}

func applyFloatEnv(dst *float64, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return
	}
	*dst = f
}
