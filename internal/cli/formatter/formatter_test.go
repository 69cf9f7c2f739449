package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/compactgantt/internal/config"
	"github.com/alexanderramin/compactgantt/internal/domain"
	"github.com/alexanderramin/compactgantt/internal/testutil"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgo(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"seconds", now.Add(-20 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-2 * time.Hour), "2h ago"},
		{"yesterday", now.Add(-30 * time.Hour), "Yesterday"},
		{"days", now.Add(-4 * 24 * time.Hour), "4d ago"},
		{"old", time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC), "Sep 30, 2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ago(tt.input, now))
		})
	}
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"ID", "NAME"}, [][]string{
		{"ROAD25", "Roadmap"},
		{"WEB01"},
	})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[0], "NAME"), strings.Index(lines[2], "Roadmap"))
	assert.Contains(t, lines[1], "──────")
	assert.Equal(t, "WEB01", strings.TrimSpace(lines[3]))
	assert.Empty(t, RenderTable(nil, nil))
}

func TestKeyValues_AlignsValues(t *testing.T) {
	out := KeyValues([][2]string{{"ID", "a"}, {"Revision", "b"}})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(lines[1]))
}

func TestFormatProjectList(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	p := testutil.NewTestProject("Roadmap", testutil.WithShortID("ROAD25"),
		testutil.WithTasks(testutil.NewTestTask(1, "Build", "2025-01-06", "2025-01-10")))
	p.Revision = 3
	p.UpdatedAt = now.Add(-2 * time.Hour)
	bare := &domain.Project{ID: "abcdef12-3456-7890", Name: "No short id"}

	out := FormatProjectList([]*domain.Project{p, bare}, now)

	assert.Contains(t, out, "PROJECTS")
	assert.Contains(t, out, "ROAD25")
	assert.Contains(t, out, "2025-01-01 → 2025-03-31")
	assert.Contains(t, out, "r3")
	assert.Contains(t, out, "2h ago")
	assert.Contains(t, out, "abcdef12")
	assert.NotContains(t, out, "abcdef12-3456")
}

func TestFormatProjectShow(t *testing.T) {
	p := testutil.NewTestProject("Roadmap",
		testutil.WithShortID("ROAD25"),
		testutil.WithTasks(
			testutil.NewTestTask(1, "Build", "2025-01-06", "2025-01-10"),
			testutil.NewTestTask(2, "Launch", "2025-02-03", "2025-02-03"),
		),
		testutil.WithPipes(domain.Pipe{ID: 1, Date: testutil.Day("2025-02-14")}),
		testutil.WithSwimlanes(domain.Swimlane{ID: 1, Title: "Platform", FromRow: 2, ToRow: 3}),
	)
	p.DateFormat = "02 Jan 2006"
	p.Windows[0].Scales[1].Visible = false

	out := FormatProjectShow(p)

	assert.Contains(t, out, "ROADMAP")
	assert.Contains(t, out, "800 × 400")
	assert.Contains(t, out, "01 Jan 2025")
	assert.Contains(t, out, "31 Mar 2025")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "day (hidden)")
	assert.Contains(t, out, "1 task")
	assert.Contains(t, out, "1 milestone")
	assert.Contains(t, out, "1 pipe")
	assert.Contains(t, out, "0 text boxes")
	assert.Contains(t, out, "Platform")
	assert.Contains(t, out, "2–3")
	assert.Contains(t, out, "1 swimlane")
}

func TestFormatRevisionList_MarksCurrent(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	p := &domain.Project{ShortID: "ROAD25", Revision: 2}
	revs := []*domain.Revision{
		{Number: 1, Note: "imported", CreatedAt: now.Add(-72 * time.Hour)},
		{Number: 2, CreatedAt: now.Add(-time.Hour)},
	}

	out := FormatRevisionList(p, revs, now)

	assert.Contains(t, out, "ROAD25 HISTORY")
	assert.Contains(t, out, "imported")
	assert.Contains(t, out, "r2 *")
	assert.NotContains(t, out, "r1 *")
	assert.Contains(t, out, "3d ago")
}

func TestFormatSummaries(t *testing.T) {
	p := &domain.Project{ShortID: "ROAD25", Name: "Roadmap", Revision: 2}

	assert.Contains(t, FormatRenderSummary(p, "svg", "out.svg", 1), "Rendered ROAD25 to out.svg SVG (1 instruction)")
	assert.Contains(t, FormatImportSummary(p, false), "Updated Roadmap [ROAD25] revision 2")
	assert.Contains(t, FormatImportSummary(p, true), "Imported")
}

func TestFormatConfig(t *testing.T) {
	out, err := FormatConfig(config.Default(), "defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "source: defaults")
	assert.Contains(t, out, "min_cell_width: 5")
}

func TestDisableColor(t *testing.T) {
	t.Cleanup(func() { setStyles(true) })
	DisableColor()
	assert.Equal(t, "plain", StyleGreen.Render("plain"))
	assert.Equal(t, "x", Dim("x"))
}
