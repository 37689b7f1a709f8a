package store

import "github.com/josephgoksu/todo/models"

// TaskStore defines the interface for task persistence.
// Tasks keep insertion order; every mutating call persists the whole list.
type TaskStore interface {
	// Load replaces the in-memory list with the contents of the backing file.
	// A missing file is not an error: the list starts empty and the result
	// reports Missing.
	Load() (LoadResult, error)

	// Save overwrites the backing file with the current list.
	Save() error

	// AddTask appends a task with the next free id and persists the list.
	AddTask(topic, description string, status models.TaskStatus) (models.Task, error)

	// ListTasks returns a copy of the tasks in store order.
	ListTasks() []models.Task

	// FindTask returns the first task with the given id, or ErrTaskNotFound.
	FindTask(id int) (models.Task, error)

	// UpdateTask replaces topic and description of a task and persists the list.
	UpdateTask(id int, topic, description string) (models.Task, error)

	// ChangeStatus sets a new status on a task and persists the list.
	ChangeStatus(id int, status models.TaskStatus) (models.Task, error)

	// Path returns the backing file path.
	Path() string
}

// LoadResult describes what Load found on disk.
type LoadResult struct {
	// Missing is true when the backing file does not exist.
	Missing bool
	// Loaded is the number of tasks read.
	Loaded int
	// Skipped counts malformed lines that were dropped.
	Skipped int
}
