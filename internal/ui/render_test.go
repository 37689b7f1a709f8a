package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/josephgoksu/todo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTaskList_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderTaskList(&buf, nil, nil))

	assert.Equal(t, "Your TODO list is empty.\n", buf.String())
}

func TestRenderTaskList_Plain(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Topic: "Groceries", Description: "Buy milk", Status: models.StatusComplete},
		{ID: 2, Topic: "Work", Description: "Report", Status: models.StatusInProgress},
	}
	var buf bytes.Buffer

	require.NoError(t, RenderTaskList(&buf, tasks, nil))

	want := "Your current TODO list:\n" +
		"ID    Topic & Description                      Status      \n" +
		strings.Repeat("-", 60) + "\n" +
		"1     Groceries - Buy milk                     complete    \n" +
		"2     Work - Report                            in progress \n"
	assert.Equal(t, want, buf.String())
}

func TestRenderTaskList_LongSummaryIsNotTruncated(t *testing.T) {
	summaryTopic := strings.Repeat("t", 30)
	tasks := []models.Task{
		{ID: 10, Topic: summaryTopic, Description: "a long description", Status: models.StatusIncomplete},
	}
	var buf bytes.Buffer

	require.NoError(t, RenderTaskList(&buf, tasks, nil))

	assert.Contains(t, buf.String(), "10    "+summaryTopic+" - a long description incomplete  \n")
}

func TestRenderTaskList_Styled(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Topic: "Groceries", Description: "Buy milk", Status: models.StatusIncomplete},
	}
	var buf bytes.Buffer

	require.NoError(t, RenderTaskList(&buf, tasks, NewRenderer(&buf, ColorAlways)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Your current TODO list:\n"))
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "Groceries - Buy milk")
	assert.Contains(t, out, "incomplete")
}
