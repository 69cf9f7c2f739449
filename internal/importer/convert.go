package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/compactgantt/internal/domain"
	"github.com/google/uuid"
)

// Convert transforms a validated ImportSchema into a project snapshot ready
// for persistence or rendering. Call Validate first; Convert assumes the
// schema is valid.
func Convert(schema *ImportSchema) (*domain.Project, error) {
	now := time.Now().UTC()

	project := &domain.Project{
		ID:         uuid.New().String(),
		ShortID:    strings.ToUpper(schema.Project.ShortID),
		Name:       schema.Project.Name,
		DateFormat: domain.Coalesce(schema.Project.DateFormat, domain.DateLayout),
		Frame: domain.Frame{
			Width:               schema.Frame.Width,
			Height:              schema.Frame.Height,
			HeaderText:          schema.Frame.HeaderText,
			HeaderHeight:        schema.Frame.HeaderHeight,
			FooterText:          schema.Frame.FooterText,
			FooterHeight:        schema.Frame.FooterHeight,
			NumRows:             schema.Frame.NumRows,
			HorizontalGridlines: schema.Frame.HorizontalGridlines,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if m := schema.Frame.Margins; m != nil {
		project.Frame.Margins = domain.Margins{Top: m.Top, Right: m.Right, Bottom: m.Bottom, Left: m.Left}
	}
	if ty := schema.Typography; ty != nil {
		project.Typography = domain.Typography{
			FontFamily:           ty.FontFamily,
			TaskFontSize:         ty.TaskFontSize,
			ScaleFontSize:        ty.ScaleFontSize,
			HeaderFooterFontSize: ty.HeaderFooterFontSize,
		}
	}

	for _, w := range schema.Windows {
		start, err := domain.ParseDay(w.Start)
		if err != nil {
			return nil, fmt.Errorf("parsing window %d start: %w", w.ID, err)
		}
		finish, err := domain.ParseDay(w.Finish)
		if err != nil {
			return nil, fmt.Errorf("parsing window %d finish: %w", w.ID, err)
		}
		scales, _ := convertScales("", w.Scales)
		project.Windows = append(project.Windows, domain.TimeWindow{
			ID: w.ID, Start: start, Finish: finish, WidthProportion: w.WidthProportion, Scales: scales,
		})
	}

	for _, s := range schema.Swimlanes {
		project.Swimlanes = append(project.Swimlanes, domain.Swimlane{
			ID: s.ID, Title: s.Title, FromRow: s.FromRow, ToRow: s.ToRow, Color: s.Color, MinRows: s.MinRows,
		})
	}

	for _, t := range schema.Tasks {
		task, err := convertTask(t)
		if err != nil {
			return nil, err
		}
		project.Tasks = append(project.Tasks, task)
	}

	for _, c := range schema.Connectors {
		project.Connectors = append(project.Connectors, domain.Connector{ID: c.ID, FromID: c.FromID, ToID: c.ToID, Color: c.Color})
	}

	for _, c := range schema.Curtains {
		from, err := domain.ParseDay(c.From)
		if err != nil {
			return nil, fmt.Errorf("parsing curtain %d from: %w", c.ID, err)
		}
		to, err := domain.ParseDay(c.To)
		if err != nil {
			return nil, fmt.Errorf("parsing curtain %d to: %w", c.ID, err)
		}
		project.Curtains = append(project.Curtains, domain.Curtain{ID: c.ID, Name: c.Name, From: from, To: to, Color: c.Color})
	}

	for _, p := range schema.Pipes {
		d, err := domain.ParseDay(p.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing pipe %d date: %w", p.ID, err)
		}
		project.Pipes = append(project.Pipes, domain.Pipe{ID: p.ID, Name: p.Name, Date: d, Color: p.Color})
	}

	for _, tb := range schema.TextBoxes {
		project.TextBoxes = append(project.TextBoxes, domain.TextBox{ID: tb.ID, Text: tb.Text, X: tb.X, Y: tb.Y, Color: tb.Color})
	}

	return project, nil
}

func convertTask(t TaskImport) (domain.Task, error) {
	start, err := domain.ParseDay(t.Start)
	if err != nil {
		return domain.Task{}, fmt.Errorf("parsing task %d start: %w", t.ID, err)
	}
	finish := start
	if t.Finish != "" {
		if finish, err = domain.ParseDay(t.Finish); err != nil {
			return domain.Task{}, fmt.Errorf("parsing task %d finish: %w", t.ID, err)
		}
	}

	// Labels default to the right of the shape with a leader line.
	label := domain.LabelConfig{
		Placement:      domain.PlacementToRight,
		Alignment:      domain.AlignLeft,
		ShowLeaderLine: true,
	}
	if l := t.Label; l != nil {
		label = domain.LabelConfig{
			Placement:        domain.Placement(domain.Coalesce(l.Placement, string(domain.PlacementToRight))),
			Hidden:           l.Hidden,
			Alignment:        domain.Alignment(domain.Coalesce(l.Alignment, string(domain.AlignLeft))),
			HorizontalOffset: l.HorizontalOffset,
			VerticalOffset:   l.VerticalOffset,
			TextColor:        l.TextColor,
			ShowLeaderLine:   domain.FromPtr(true, l.ShowLeaderLine),
		}
	}

	return domain.Task{
		ID:          t.ID,
		Name:        t.Name,
		Start:       start,
		Finish:      finish,
		Row:         t.Row,
		IsMilestone: t.Milestone,
		FillColor:   t.FillColor,
		Label:       label,
	}, nil
}
