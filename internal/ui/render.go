package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/todo/models"
)

// List view layout. Columns match the file format but are joined by a
// single space instead of " | ".
const (
	ListTitle   = "Your current TODO list:"
	EmptyList   = "Your TODO list is empty."
	listRuleLen = 60
)

var listWidths = []int{5, 40, 12}

// RenderTaskList writes the list view of tasks in store order, or the
// empty-list message when there are none.
func RenderTaskList(w io.Writer, tasks []models.Task, r *lipgloss.Renderer) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, EmptyList)
		return err
	}

	rows := make([][]string, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, []string{strconv.Itoa(task.ID), task.Summary(), string(task.Status)})
	}

	table := &Table{
		Headers:  []string{"ID", "Topic & Description", "Status"},
		Rows:     rows,
		Widths:   listWidths,
		Rule:     strings.Repeat("-", listRuleLen),
		Renderer: r,
	}
	if r != nil {
		table.CellStyle = func(col int, value string) lipgloss.Style {
			if col == 2 {
				return statusStyle(r, models.TaskStatus(value))
			}
			return textStyle(r)
		}
	}

	if _, err := fmt.Fprintln(w, ListTitle); err != nil {
		return err
	}
	_, err := io.WriteString(w, table.Render())
	return err
}
