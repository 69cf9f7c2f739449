package swimlane

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/compactgantt/internal/config"
	"github.com/alexanderramin/compactgantt/internal/domain"
	"github.com/alexanderramin/compactgantt/internal/draw"
	"github.com/alexanderramin/compactgantt/internal/frame"
)

func layout(t *testing.T, rows int) *frame.Layout {
	t.Helper()
	start, _ := domain.ParseDay("2025-01-01")
	p := &domain.Project{
		Frame: domain.Frame{Width: 400, Height: 240, NumRows: rows},
		Windows: []domain.TimeWindow{{
			Start: start, Finish: start.Add(29 * 24 * time.Hour), WidthProportion: 1,
			Scales: []domain.Scale{{Granularity: domain.GranularityDay, Visible: true, Height: 40}},
		}},
	}
	l, err := frame.Compute(p, config.Default())
	require.NoError(t, err)
	return l
}

func TestLayout_SpansRowRange(t *testing.T) {
	l := layout(t, 4)

	lanes, err := Layout([]domain.Swimlane{
		{ID: 1, Title: "Build", FromRow: 1, ToRow: 2, Color: "#eef"},
		{ID: 2, Title: "Ship", FromRow: 4, ToRow: 4},
	}, l)
	require.NoError(t, err)
	require.Len(t, lanes, 2)

	assert.Equal(t, 40.0, lanes[0].Rect.Y)
	assert.Equal(t, 100.0, lanes[0].Rect.H)
	assert.Equal(t, 400.0, lanes[0].Rect.W)
	assert.Equal(t, 190.0, lanes[1].Rect.Y)
	assert.Equal(t, 50.0, lanes[1].Rect.H)
}

func TestLayout_RejectsOverlapAndOutOfRange(t *testing.T) {
	l := layout(t, 4)

	tests := []struct {
		name  string
		lanes []domain.Swimlane
	}{
		{"overlap", []domain.Swimlane{{ID: 1, FromRow: 1, ToRow: 3}, {ID: 2, FromRow: 3, ToRow: 4}}},
		{"beyond last row", []domain.Swimlane{{ID: 1, FromRow: 3, ToRow: 5}}},
		{"row zero", []domain.Swimlane{{ID: 1, FromRow: 0, ToRow: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Layout(tt.lanes, l)
			var cfgErr *domain.ConfigurationError
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestInstructions_BandsThenTitles(t *testing.T) {
	l := layout(t, 4)
	lanes, err := Layout([]domain.Swimlane{
		{ID: 1, Title: "Build", FromRow: 1, ToRow: 2, Color: "not-a-colour"},
		{ID: 2, FromRow: 3, ToRow: 3, Color: "LightBlue"},
	}, l)
	require.NoError(t, err)

	list := draw.List(Instructions(lanes, Style{DefaultFill: "#f2f2f2", TextColor: "black", FontSize: 9, Padding: 3}))

	require.Len(t, list, 3)
	assert.Equal(t, "#f2f2f2", list[0].(draw.Rect).Fill)
	assert.Equal(t, "lightblue", list[1].(draw.Rect).Fill)

	title := list[2].(draw.Text)
	assert.Equal(t, "Build", title.Content)
	assert.Equal(t, 397.0, title.X)
	assert.Equal(t, 137.0, title.Y)
	assert.Equal(t, draw.AnchorEnd, title.Anchor)
}
