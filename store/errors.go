package store

import (
	"errors"

	"github.com/josephgoksu/todo/models"
)

var (
	// ErrTaskNotFound is returned when no task has the requested id.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidStatus is returned when a status is outside the fixed enum.
	ErrInvalidStatus = models.ErrInvalidStatus

	// ErrMalformedLine is returned by ParseLine for lines that cannot be read
	// as a task. Load drops such lines.
	ErrMalformedLine = errors.New("malformed task line")

	// ErrUnsupportedFormat is returned by Export for unknown format names.
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
