package importer

import "github.com/alexanderramin/compactgantt/internal/domain"

// FromProject converts a project back into its file representation.
// Convert(FromProject(p)) reproduces p apart from its ID and timestamps.
func FromProject(p *domain.Project) *ImportSchema {
	schema := &ImportSchema{
		Project: ProjectImport{ShortID: p.ShortID, Name: p.Name, DateFormat: p.DateFormat},
		Frame: FrameImport{
			Width:               p.Frame.Width,
			Height:              p.Frame.Height,
			HeaderText:          p.Frame.HeaderText,
			HeaderHeight:        p.Frame.HeaderHeight,
			FooterText:          p.Frame.FooterText,
			FooterHeight:        p.Frame.FooterHeight,
			NumRows:             p.Frame.NumRows,
			HorizontalGridlines: p.Frame.HorizontalGridlines,
		},
	}
	if m := p.Frame.Margins; m != (domain.Margins{}) {
		schema.Frame.Margins = &MarginsImport{Top: m.Top, Right: m.Right, Bottom: m.Bottom, Left: m.Left}
	}
	if ty := p.Typography; ty != (domain.Typography{}) {
		schema.Typography = &TypographyImport{
			FontFamily:           ty.FontFamily,
			TaskFontSize:         ty.TaskFontSize,
			ScaleFontSize:        ty.ScaleFontSize,
			HeaderFooterFontSize: ty.HeaderFooterFontSize,
		}
	}

	for _, w := range p.Windows {
		wi := WindowImport{
			ID:              w.ID,
			Start:           w.Start.Format(domain.DateLayout),
			Finish:          w.Finish.Format(domain.DateLayout),
			WidthProportion: w.WidthProportion,
		}
		for _, s := range w.Scales {
			visible := s.Visible
			wi.Scales = append(wi.Scales, ScaleImport{
				Granularity: string(s.Granularity), Visible: &visible, ShowGridlines: s.ShowGridlines, Height: s.Height,
			})
		}
		schema.Windows = append(schema.Windows, wi)
	}

	for _, s := range p.Swimlanes {
		schema.Swimlanes = append(schema.Swimlanes, SwimlaneImport{
			ID: s.ID, Title: s.Title, FromRow: s.FromRow, ToRow: s.ToRow, Color: s.Color, MinRows: s.MinRows,
		})
	}

	for _, t := range p.Tasks {
		show := t.Label.ShowLeaderLine
		schema.Tasks = append(schema.Tasks, TaskImport{
			ID:        t.ID,
			Name:      t.Name,
			Start:     t.Start.Format(domain.DateLayout),
			Finish:    t.Finish.Format(domain.DateLayout),
			Row:       t.Row,
			Milestone: t.IsMilestone,
			FillColor: t.FillColor,
			Label: &LabelImport{
				Placement:        string(t.Label.Placement),
				Hidden:           t.Label.Hidden,
				Alignment:        string(t.Label.Alignment),
				HorizontalOffset: t.Label.HorizontalOffset,
				VerticalOffset:   t.Label.VerticalOffset,
				TextColor:        t.Label.TextColor,
				ShowLeaderLine:   &show,
			},
		})
	}

	for _, c := range p.Connectors {
		schema.Connectors = append(schema.Connectors, ConnectorImport{ID: c.ID, FromID: c.FromID, ToID: c.ToID, Color: c.Color})
	}
	for _, c := range p.Curtains {
		schema.Curtains = append(schema.Curtains, CurtainImport{
			ID: c.ID, Name: c.Name, From: c.From.Format(domain.DateLayout), To: c.To.Format(domain.DateLayout), Color: c.Color,
		})
	}
	for _, pp := range p.Pipes {
		schema.Pipes = append(schema.Pipes, PipeImport{ID: pp.ID, Name: pp.Name, Date: pp.Date.Format(domain.DateLayout), Color: pp.Color})
	}
	for _, tb := range p.TextBoxes {
		schema.TextBoxes = append(schema.TextBoxes, TextBoxImport{ID: tb.ID, Text: tb.Text, X: tb.X, Y: tb.Y, Color: tb.Color})
	}
	return schema
}
