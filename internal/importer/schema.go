package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level structure of a project snapshot file. The
// same structure is stored as JSON in the snapshot database.
type ImportSchema struct {
	Project    ProjectImport     `json:"project" yaml:"project"`
	Frame      FrameImport       `json:"frame" yaml:"frame"`
	Typography *TypographyImport `json:"typography,omitempty" yaml:"typography,omitempty"`
	Windows    []WindowImport    `json:"windows" yaml:"windows"`
	Swimlanes  []SwimlaneImport  `json:"swimlanes,omitempty" yaml:"swimlanes,omitempty"`
	Tasks      []TaskImport      `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	Connectors []ConnectorImport `json:"connectors,omitempty" yaml:"connectors,omitempty"`
	Curtains   []CurtainImport   `json:"curtains,omitempty" yaml:"curtains,omitempty"`
	Pipes      []PipeImport      `json:"pipes,omitempty" yaml:"pipes,omitempty"`
	TextBoxes  []TextBoxImport   `json:"text_boxes,omitempty" yaml:"text_boxes,omitempty"`
}

type ProjectImport struct {
	ShortID    string `json:"short_id" yaml:"short_id"`
	Name       string `json:"name" yaml:"name"`
	DateFormat string `json:"date_format,omitempty" yaml:"date_format,omitempty"`
}

type FrameImport struct {
	Width               float64        `json:"width" yaml:"width"`
	Height              float64        `json:"height" yaml:"height"`
	Margins             *MarginsImport `json:"margins,omitempty" yaml:"margins,omitempty"`
	HeaderText          string         `json:"header_text,omitempty" yaml:"header_text,omitempty"`
	HeaderHeight        float64        `json:"header_height,omitempty" yaml:"header_height,omitempty"`
	FooterText          string         `json:"footer_text,omitempty" yaml:"footer_text,omitempty"`
	FooterHeight        float64        `json:"footer_height,omitempty" yaml:"footer_height,omitempty"`
	NumRows             int            `json:"num_rows" yaml:"num_rows"`
	HorizontalGridlines bool           `json:"horizontal_gridlines,omitempty" yaml:"horizontal_gridlines,omitempty"`
}

type MarginsImport struct {
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" yaml:"left"`
}

type TypographyImport struct {
	FontFamily           string  `json:"font_family,omitempty" yaml:"font_family,omitempty"`
	TaskFontSize         float64 `json:"task_font_size,omitempty" yaml:"task_font_size,omitempty"`
	ScaleFontSize        float64 `json:"scale_font_size,omitempty" yaml:"scale_font_size,omitempty"`
	HeaderFooterFontSize float64 `json:"header_footer_font_size,omitempty" yaml:"header_footer_font_size,omitempty"`
}

type WindowImport struct {
	ID              int           `json:"id" yaml:"id"`
	Start           string        `json:"start" yaml:"start"`
	Finish          string        `json:"finish" yaml:"finish"`
	WidthProportion float64       `json:"width_proportion" yaml:"width_proportion"`
	Scales          []ScaleImport `json:"scales" yaml:"scales"`
}

// ScaleImport defaults to visible when Visible is omitted.
type ScaleImport struct {
	Granularity   string  `json:"granularity" yaml:"granularity"`
	Visible       *bool   `json:"visible,omitempty" yaml:"visible,omitempty"`
	ShowGridlines bool    `json:"show_gridlines,omitempty" yaml:"show_gridlines,omitempty"`
	Height        float64 `json:"height" yaml:"height"`
}

type SwimlaneImport struct {
	ID      int    `json:"id" yaml:"id"`
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`
	FromRow int    `json:"from_row" yaml:"from_row"`
	ToRow   int    `json:"to_row" yaml:"to_row"`
	Color   string `json:"color,omitempty" yaml:"color,omitempty"`
	MinRows int    `json:"min_rows,omitempty" yaml:"min_rows,omitempty"`
}

// TaskImport describes a task or milestone. A milestone may omit finish.
type TaskImport struct {
	ID        int          `json:"id" yaml:"id"`
	Name      string       `json:"name" yaml:"name"`
	Start     string       `json:"start" yaml:"start"`
	Finish    string       `json:"finish,omitempty" yaml:"finish,omitempty"`
	Row       int          `json:"row" yaml:"row"`
	Milestone bool         `json:"milestone,omitempty" yaml:"milestone,omitempty"`
	FillColor string       `json:"fill_color,omitempty" yaml:"fill_color,omitempty"`
	Label     *LabelImport `json:"label,omitempty" yaml:"label,omitempty"`
}

type LabelImport struct {
	Placement        string  `json:"placement,omitempty" yaml:"placement,omitempty"`
	Hidden           bool    `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Alignment        string  `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	HorizontalOffset float64 `json:"horizontal_offset,omitempty" yaml:"horizontal_offset,omitempty"`
	VerticalOffset   float64 `json:"vertical_offset,omitempty" yaml:"vertical_offset,omitempty"`
	TextColor        string  `json:"text_color,omitempty" yaml:"text_color,omitempty"`
	ShowLeaderLine   *bool   `json:"show_leader_line,omitempty" yaml:"show_leader_line,omitempty"`
}

type ConnectorImport struct {
	ID     int    `json:"id" yaml:"id"`
	FromID int    `json:"from_id" yaml:"from_id"`
	ToID   int    `json:"to_id" yaml:"to_id"`
	Color  string `json:"color,omitempty" yaml:"color,omitempty"`
}

type CurtainImport struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	From  string `json:"from" yaml:"from"`
	To    string `json:"to" yaml:"to"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

type PipeImport struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Date  string `json:"date" yaml:"date"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

type TextBoxImport struct {
	ID    int     `json:"id" yaml:"id"`
	Text  string  `json:"text" yaml:"text"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Color string  `json:"color,omitempty" yaml:"color,omitempty"`
}

// Encoding names a snapshot file syntax.
type Encoding string

const (
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
)

// EncodingFromPath treats .yaml and .yml files as YAML and everything else
// as JSON.
func EncodingFromPath(path string) Encoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return EncodingYAML
	default:
		return EncodingJSON
	}
}

// LoadFile reads and parses a project snapshot file.
func LoadFile(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, EncodingFromPath(path))
}

// Parse decodes a snapshot in the given encoding.
func Parse(data []byte, enc Encoding) (*ImportSchema, error) {
	var schema ImportSchema
	switch enc {
	case EncodingYAML:
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing yaml snapshot: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing json snapshot: %w", err)
		}
	}
	return &schema, nil
}

// Marshal encodes a snapshot in the given encoding.
func Marshal(schema *ImportSchema, enc Encoding) ([]byte, error) {
	if enc == EncodingYAML {
		return yaml.Marshal(schema)
	}
	return json.MarshalIndent(schema, "", "  ")
}
