package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/compactgantt/internal/domain"
)

// FormatProjectList renders stored projects inside a bordered box.
func FormatProjectList(projects []*domain.Project, now time.Time) string {
	headers := []string{"ID", "NAME", "RANGE", "TASKS", "REV", "UPDATED"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		id := p.ShortID
		if strings.TrimSpace(id) == "" {
			id = TruncID(p.ID)
		}
		rows = append(rows, []string{
			id,
			Bold(p.Name),
			dateRange(p),
			strconv.Itoa(len(p.Tasks)),
			StyleDim.Render(fmt.Sprintf("r%d", p.Revision)),
			Ago(p.UpdatedAt, now),
		})
	}
	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatProjectShow renders one project's frame, windows and entity counts.
func FormatProjectShow(p *domain.Project) string {
	meta := KeyValues([][2]string{
		{"ID", p.ID},
		{"Short ID", Bold(p.DisplayID())},
		{"Revision", strconv.Itoa(p.Revision)},
		{"Canvas", fmt.Sprintf("%g × %g", p.Frame.Width, p.Frame.Height)},
		{"Rows", strconv.Itoa(p.Frame.NumRows)},
		{"Range", dateRange(p)},
		{"Header", orDash(p.Frame.HeaderText)},
		{"Footer", orDash(p.Frame.FooterText)},
	})

	layout := p.DateFormat
	if layout == "" {
		layout = domain.DateLayout
	}
	windowRows := make([][]string, 0, len(p.Windows))
	for _, w := range p.Windows {
		windowRows = append(windowRows, []string{
			strconv.Itoa(w.ID),
			w.Start.Format(layout),
			w.Finish.Format(layout),
			fmt.Sprintf("%.0f%%", w.WidthProportion*100),
			scaleList(w.Scales),
		})
	}
	windows := RenderTable([]string{"#", "START", "FINISH", "WIDTH", "SCALES"}, windowRows)

	var milestones int
	for _, t := range p.Tasks {
		if t.Milestone() {
			milestones++
		}
	}
	counts := strings.Join([]string{
		Plural(len(p.Tasks)-milestones, "task", "tasks"),
		Plural(milestones, "milestone", "milestones"),
		Plural(len(p.Swimlanes), "swimlane", "swimlanes"),
		Plural(len(p.Connectors), "connector", "connectors"),
		Plural(len(p.Curtains), "curtain", "curtains"),
		Plural(len(p.Pipes), "pipe", "pipes"),
		Plural(len(p.TextBoxes), "text box", "text boxes"),
	}, Dim(" · "))

	sections := []string{meta, Header("Windows"), windows}
	if len(p.Swimlanes) > 0 {
		laneRows := make([][]string, 0, len(p.Swimlanes))
		for _, s := range p.Swimlanes {
			laneRows = append(laneRows, []string{
				strconv.Itoa(s.ID),
				orDash(s.Title),
				fmt.Sprintf("%d–%d", s.FromRow, s.ToRow),
				strconv.Itoa(s.RowCount()),
			})
		}
		sections = append(sections, Header("Swimlanes"), RenderTable([]string{"#", "TITLE", "ROWS", "SPAN"}, laneRows))
	}
	sections = append(sections, Header("Contents"), counts)
	body := strings.Join(sections, "\n\n")
	return RenderBox(p.Name, body)
}

// FormatRevisionList renders a project's stored revisions, oldest first.
func FormatRevisionList(p *domain.Project, revs []*domain.Revision, now time.Time) string {
	rows := make([][]string, 0, len(revs))
	for _, r := range revs {
		num := fmt.Sprintf("r%d", r.Number)
		if r.Number == p.Revision {
			num = StyleGreen.Render(num + " *")
		}
		rows = append(rows, []string{num, orDash(r.Note), r.CreatedAt.Format(time.RFC3339), Ago(r.CreatedAt, now)})
	}
	return RenderBox(p.DisplayID()+" history", RenderTable([]string{"REV", "NOTE", "STORED", "AGE"}, rows))
}

func dateRange(p *domain.Project) string {
	if len(p.Windows) == 0 {
		return Dim("--")
	}
	layout := domain.Coalesce(p.DateFormat, domain.DateLayout)
	return p.ChartStart().Format(layout) + " → " + p.ChartFinish().Format(layout)
}

func scaleList(scales []domain.Scale) string {
	names := make([]string, 0, len(scales))
	for _, s := range scales {
		name := string(s.Granularity)
		if !s.Visible {
			name = Dim(name + " (hidden)")
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return Dim("--")
	}
	return s
}
