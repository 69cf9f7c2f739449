package importer

import (
	"fmt"

	"github.com/alexanderramin/compactgantt/internal/domain"
)

// Validate checks the snapshot before conversion and returns every problem
// found rather than stopping at the first. tolerance is how far the window
// proportions may stray from 1.0, normally the engine's ProportionTolerance.
func Validate(schema *ImportSchema, tolerance float64) []error {
	var errs []error

	errs = append(errs, validateProject(&schema.Project)...)
	errs = append(errs, validateFrame(&schema.Frame)...)
	errs = append(errs, validateWindows(schema.Windows, tolerance)...)
	errs = append(errs, validateSwimlanes(schema.Swimlanes, schema.Frame.NumRows)...)

	taskIDs := make(map[int]bool)
	errs = append(errs, validateTasks(schema.Tasks, schema.Frame.NumRows, taskIDs)...)
	errs = append(errs, validateConnectors(schema.Connectors, taskIDs)...)

	for i, c := range schema.Curtains {
		prefix := fmt.Sprintf("curtains[%d]", i)
		from, fromErr := requireDate(prefix+".from", c.From)
		to, toErr := requireDate(prefix+".to", c.To)
		errs = appendIf(errs, fromErr, toErr)
		if fromErr == nil && toErr == nil && to.Before(from) {
			errs = append(errs, fmt.Errorf("%s: to %q is before from %q", prefix, c.To, c.From))
		}
	}
	for i, p := range schema.Pipes {
		_, err := requireDate(fmt.Sprintf("pipes[%d].date", i), p.Date)
		errs = appendIf(errs, err)
	}
	for i, tb := range schema.TextBoxes {
		if tb.Text == "" {
			errs = append(errs, fmt.Errorf("text_boxes[%d].text is required", i))
		}
	}

	return errs
}

func validateProject(p *ProjectImport) []error {
	var errs []error

	if p.ShortID == "" {
		errs = append(errs, fmt.Errorf("project.short_id is required"))
	} else {
		candidate := domain.Project{ShortID: p.ShortID}
		if err := candidate.ValidateShortID(); err != nil {
			errs = append(errs, fmt.Errorf("project.short_id: %w", err))
		}
	}
	if p.Name == "" {
		errs = append(errs, fmt.Errorf("project.name is required"))
	}
	return errs
}

func validateFrame(f *FrameImport) []error {
	var errs []error

	if f.Width <= 0 || f.Height <= 0 {
		errs = append(errs, fmt.Errorf("frame: width and height must be positive, got %gx%g", f.Width, f.Height))
	}
	if f.NumRows < 1 {
		errs = append(errs, fmt.Errorf("frame.num_rows must be at least 1, got %d", f.NumRows))
	}
	if f.HeaderHeight < 0 || f.FooterHeight < 0 {
		errs = append(errs, fmt.Errorf("frame: header and footer heights must not be negative"))
	}
	if m := f.Margins; m != nil && (m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0) {
		errs = append(errs, fmt.Errorf("frame.margins must not be negative"))
	}
	return errs
}

func validateWindows(windows []WindowImport, tolerance float64) []error {
	if len(windows) == 0 {
		return []error{fmt.Errorf("windows: at least one time window is required")}
	}
	var errs []error

	parsed := make([]domain.TimeWindow, 0, len(windows))
	for i, w := range windows {
		prefix := fmt.Sprintf("windows[%d]", i)
		start, startErr := requireDate(prefix+".start", w.Start)
		finish, finishErr := requireDate(prefix+".finish", w.Finish)
		errs = appendIf(errs, startErr, finishErr)

		scales, scaleErrs := convertScales(prefix, w.Scales)
		errs = append(errs, scaleErrs...)
		if startErr == nil && finishErr == nil && len(scaleErrs) == 0 {
			parsed = append(parsed, domain.TimeWindow{
				ID: w.ID, Start: start, Finish: finish, WidthProportion: w.WidthProportion, Scales: scales,
			})
		}
	}

	if len(errs) == 0 {
		if err := domain.ValidateWindows(parsed, tolerance); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func convertScales(prefix string, scales []ScaleImport) ([]domain.Scale, []error) {
	var errs []error
	out := make([]domain.Scale, 0, len(scales))
	for j, s := range scales {
		field := fmt.Sprintf("%s.scales[%d]", prefix, j)
		if !domain.ValidGranularities[s.Granularity] {
			errs = append(errs, fmt.Errorf("%s.granularity: invalid value %q", field, s.Granularity))
		}
		if s.Height < 0 {
			errs = append(errs, fmt.Errorf("%s.height must not be negative", field))
		}
		out = append(out, domain.Scale{
			Granularity:   domain.Granularity(s.Granularity),
			Visible:       domain.FromPtr(true, s.Visible),
			ShowGridlines: s.ShowGridlines,
			Height:        s.Height,
		})
	}
	return out, errs
}

func validateSwimlanes(lanes []SwimlaneImport, numRows int) []error {
	if len(lanes) == 0 || numRows < 1 {
		return nil
	}
	parsed := make([]domain.Swimlane, len(lanes))
	for i, s := range lanes {
		parsed[i] = domain.Swimlane{ID: s.ID, FromRow: s.FromRow, ToRow: s.ToRow}
	}
	if err := domain.ValidateSwimlanes(parsed, numRows); err != nil {
		return []error{err}
	}
	return nil
}

func validateTasks(tasks []TaskImport, numRows int, ids map[int]bool) []error {
	var errs []error

	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		if ids[t.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %d", prefix, t.ID))
		}
		ids[t.ID] = true

		start, startErr := requireDate(prefix+".start", t.Start)
		errs = appendIf(errs, startErr)
		if t.Finish != "" {
			finish, finishErr := requireDate(prefix+".finish", t.Finish)
			errs = appendIf(errs, finishErr)
			if startErr == nil && finishErr == nil && finish.Before(start) {
				errs = append(errs, fmt.Errorf("%s: finish %q is before start %q", prefix, t.Finish, t.Start))
			}
		}
		if numRows >= 1 && (t.Row < 1 || t.Row > numRows) {
			errs = append(errs, fmt.Errorf("%s.row: %d outside [1,%d]", prefix, t.Row, numRows))
		}

		if l := t.Label; l != nil {
			if l.Placement != "" && !domain.ValidPlacements[l.Placement] {
				errs = append(errs, fmt.Errorf("%s.label.placement: invalid value %q", prefix, l.Placement))
			}
			if l.Alignment != "" && !domain.ValidAlignments[l.Alignment] {
				errs = append(errs, fmt.Errorf("%s.label.alignment: invalid value %q", prefix, l.Alignment))
			}
			if l.HorizontalOffset < 0 || l.VerticalOffset < 0 {
				errs = append(errs, fmt.Errorf("%s.label: offsets must not be negative", prefix))
			}
		}
	}
	return errs
}

func validateConnectors(conns []ConnectorImport, taskIDs map[int]bool) []error {
	var errs []error

	for i, c := range conns {
		prefix := fmt.Sprintf("connectors[%d]", i)
		if !taskIDs[c.FromID] {
			errs = append(errs, fmt.Errorf("%s.from_id: task %d not found", prefix, c.FromID))
		}
		if !taskIDs[c.ToID] {
			errs = append(errs, fmt.Errorf("%s.to_id: task %d not found", prefix, c.ToID))
		}
		if c.FromID == c.ToID {
			errs = append(errs, fmt.Errorf("%s: connector links task %d to itself", prefix, c.FromID))
		}
	}
	return errs
}

func appendIf(errs []error, candidates ...error) []error {
	for _, err := range candidates {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
