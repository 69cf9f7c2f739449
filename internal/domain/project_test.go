package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject_ChartRangeIgnoresWindowOrder(t *testing.T) {
	ws := twoWindows()
	p := &Project{Windows: []TimeWindow{ws[1], ws[0]}}

	assert.Equal(t, day("2025-01-01"), p.ChartStart())
	assert.Equal(t, day("2025-06-30"), p.ChartFinish())
	assert.True(t, (&Project{}).ChartStart().IsZero())
}

func TestProject_DisplayIDAndFindTask(t *testing.T) {
	p := &Project{ID: "0123456789abcdef", Tasks: []Task{{ID: 4, Name: "Build"}}}
	assert.Equal(t, "01234567", p.DisplayID())
	p.ShortID = "WEB01"
	assert.Equal(t, "WEB01", p.DisplayID())

	task, ok := p.FindTask(4)
	assert.True(t, ok)
	assert.Equal(t, "Build", task.Name)
	_, ok = p.FindTask(5)
	assert.False(t, ok)
}
