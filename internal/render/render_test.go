package render

import (
	"strings"
	"testing"

	"github.com/metalagman/taskstack/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleRows = []task.Row{
	{ID: 1, Title: "Buy milk", Status: task.StatusPending, Priority: task.PriorityLow},
	{ID: 2, Title: "Ship release", Status: task.StatusInProgress, Priority: task.PriorityHigh, Urgent: true},
}

func TestTaskLine(t *testing.T) {
	t.Parallel()

	got := TaskLine(task.Task{ID: 3, Title: "Pay rent", Status: task.StatusCompleted, Priority: task.PriorityMedium})
	assert.Equal(t, "[3] Pay rent - status: completed - priority: medium", got)
}

func TestList(t *testing.T) {
	t.Parallel()

	out := List([]task.Task{
		{ID: 1, Title: "a", Status: task.StatusPending, Priority: task.PriorityLow},
		{ID: 2, Title: "b", Status: task.StatusPending, Priority: task.PriorityHigh},
	})
	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.True(t, strings.HasPrefix(out, "[1] a"))
}

func TestBox(t *testing.T) {
	t.Parallel()

	out := Box(sampleRows)
	for _, want := range []string{"title", "Buy milk", "Ship release", "in_progress", "true"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Buy milk"), strings.Index(out, "Ship release"))
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	rows := []task.Row{{ID: 1, Title: "a|b", Status: task.StatusPending, Priority: task.PriorityLow}}
	out := Markdown(rows)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "| id | title | status | priority | urgent |", lines[0])
	assert.Equal(t, `| 1 | a\|b | pending | low | false |`, lines[2])
}

func TestTable_Markdown(t *testing.T) {
	t.Parallel()

	out, err := Table(sampleRows, "markdown", "notty")
	require.NoError(t, err)
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "Ship release")
}
