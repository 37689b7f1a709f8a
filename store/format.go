package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/josephgoksu/todo/models"
)

// Column layout of the todo list file.
const (
	IDWidth      = 5
	SummaryWidth = 40
	StatusWidth  = 12
	RuleWidth    = 60

	// HeaderLines is the number of leading lines Load skips.
	HeaderLines = 2

	FieldSeparator = " | "
	TopicSeparator = " - "

	HeaderID      = "ID"
	HeaderSummary = "Topic & Description"
	HeaderStatus  = "Status"
)

// HeaderLine returns the column title line of the file.
func HeaderLine() string {
	return formatColumns(HeaderID, HeaderSummary, HeaderStatus)
}

// RuleLine returns the dashed separator under the header.
func RuleLine() string {
	return strings.Repeat("-", RuleWidth)
}

// FormatLine renders a task as one fixed-width line, without a newline.
// Padding never truncates: long fields push the following columns right.
func FormatLine(task models.Task) string {
	return formatColumns(strconv.Itoa(task.ID), task.Summary(), string(task.Status))
}

func formatColumns(id, summary, status string) string {
	return fmt.Sprintf("%-*s%s%-*s%s%-*s",
		IDWidth, id, FieldSeparator,
		SummaryWidth, summary, FieldSeparator,
		StatusWidth, status)
}

// ParseLine reads a task from a data line. Lines that do not split into
// exactly three fields, carry a non-positive or non-numeric id, or lack the
// topic separator return ErrMalformedLine. Column padding is removed; the
// status is returned as stored, without enum validation.
func ParseLine(line string) (models.Task, error) {
	parts := strings.Split(strings.TrimSpace(line), FieldSeparator)
	if len(parts) != 3 {
		return models.Task{}, fmt.Errorf("%w: expected 3 fields, got %d", ErrMalformedLine, len(parts))
	}

	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || id < 1 {
		return models.Task{}, fmt.Errorf("%w: invalid id %q", ErrMalformedLine, strings.TrimSpace(parts[0]))
	}

	topic, description, ok := strings.Cut(parts[1], TopicSeparator)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: missing %q between topic and description", ErrMalformedLine, TopicSeparator)
	}

	return models.Task{
		ID:          id,
		Topic:       topic,
		Description: strings.TrimRight(description, " "),
		Status:      models.TaskStatus(strings.TrimSpace(parts[2])),
	}, nil
}
