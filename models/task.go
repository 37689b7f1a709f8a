package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TaskStatus represents the possible statuses of a task.
type TaskStatus string

const (
	StatusIncomplete TaskStatus = "incomplete"
	StatusInProgress TaskStatus = "in progress"
	StatusComplete   TaskStatus = "complete"
)

// ErrInvalidStatus is returned when a status is not one of CoreStatuses.
var ErrInvalidStatus = errors.New("invalid status")

// CoreStatuses returns the fixed set of statuses in display order.
// Any status may be changed to any other; there is no transition order.
func CoreStatuses() []TaskStatus {
	return []TaskStatus{StatusIncomplete, StatusInProgress, StatusComplete}
}

// IsValid reports whether s is one of CoreStatuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusIncomplete, StatusInProgress, StatusComplete:
		return true
	}
	return false
}

// ParseStatus converts raw input into a TaskStatus. Matching is exact.
func ParseStatus(raw string) (TaskStatus, error) {
	s := TaskStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// StatusNames joins the core statuses with ", " for messages.
func StatusNames() string {
	names := make([]string, 0, 3)
	for _, s := range CoreStatuses() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// Task is a single todo record.
type Task struct {
	ID          int        `json:"id" yaml:"id" toml:"id" validate:"min=1"`
	Topic       string     `json:"topic" yaml:"topic" toml:"topic"`
	Description string     `json:"description" yaml:"description" toml:"description"`
	Status      TaskStatus `json:"status" yaml:"status" toml:"status" validate:"required,oneof='incomplete' 'in progress' 'complete'"`
}

// Summary returns the combined "topic - description" column text.
func (t Task) Summary() string {
	return t.Topic + " - " + t.Description
}

// TaskList represents a collection of tasks, used for structured exports.
type TaskList struct {
	TotalCount int    `json:"totalCount" yaml:"totalCount" toml:"totalCount"`
	Tasks      []Task `json:"tasks" yaml:"tasks" toml:"tasks" validate:"dive"`
}

// NewTaskList wraps tasks with their count.
func NewTaskList(tasks []Task) TaskList {
	if tasks == nil {
		tasks = []Task{}
	}
	return TaskList{TotalCount: len(tasks), Tasks: tasks}
}

var validate = validator.New()

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("%s", strings.Join(messages, "; "))
}
