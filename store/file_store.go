package store

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/josephgoksu/todo/internal/config"
	"github.com/josephgoksu/todo/internal/logger"
	"github.com/josephgoksu/todo/models"
	"github.com/spf13/afero"
)

// maxLineSize bounds a single task line when scanning the file.
const maxLineSize = 1024 * 1024

// FileTaskStore implements TaskStore on top of a fixed-width text file.
// It keeps the whole list in memory and rewrites the file after each
// mutation. There is no locking: concurrent writers race and the last one wins.
type FileTaskStore struct {
	fs       afero.Fs
	filePath string
	tasks    []models.Task
	logger   *log.Logger
}

// Option configures a FileTaskStore.
type Option func(*FileTaskStore)

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) Option {
	return func(s *FileTaskStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewFileTaskStore creates a store for filePath on the given filesystem.
// An empty filePath selects config.DefaultListName. Use afero.NewOsFs()
// for real files or afero.NewMemMapFs() in tests. The store starts empty;
// call Load to read the file.
func NewFileTaskStore(fsys afero.Fs, filePath string, opts ...Option) *FileTaskStore {
	s := &FileTaskStore{
		fs:       fsys,
		filePath: config.ResolveListName(filePath),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *FileTaskStore) Path() string {
	return s.filePath
}

// Load reads the backing file, skipping the two header lines.
func (s *FileTaskStore) Load() (LoadResult, error) {
	s.tasks = nil

	f, err := s.fs.Open(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("todo list file not found, starting empty", "path", s.filePath)
			return LoadResult{Missing: true}, nil
		}
		return LoadResult{}, fmt.Errorf("failed to open todo list %s: %w", s.filePath, err)
	}
	defer func() { _ = f.Close() }()

	var result LoadResult
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo <= HeaderLines {
			continue
		}
		task, err := ParseLine(scanner.Text())
		if err != nil {
			result.Skipped++
			s.logger.Debug("dropping malformed line", "path", s.filePath, "line", lineNo, "err", err)
			continue
		}
		s.tasks = append(s.tasks, task)
	}
	if err := scanner.Err(); err != nil {
		s.tasks = nil
		return LoadResult{}, fmt.Errorf("failed to read todo list %s: %w", s.filePath, err)
	}

	result.Loaded = len(s.tasks)
	s.logger.Debug("loaded todo list", "path", s.filePath, "tasks", result.Loaded, "skipped", result.Skipped)
	return result, nil
}

// Save overwrites the backing file with the header, the rule and one line per task.
func (s *FileTaskStore) Save() error {
	var sb strings.Builder
	sb.WriteString(HeaderLine() + "\n")
	sb.WriteString(RuleLine() + "\n")
	for _, task := range s.tasks {
		sb.WriteString(FormatLine(task) + "\n")
	}

	dir := filepath.Dir(s.filePath)
	if dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := afero.WriteFile(s.fs, s.filePath, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write todo list %s: %w", s.filePath, err)
	}

	s.logger.Debug("saved todo list", "path", s.filePath, "tasks", len(s.tasks))
	return nil
}

// nextID returns max existing id + 1, or 1 for an empty list.
func (s *FileTaskStore) nextID() int {
	maxID := 0
	for _, task := range s.tasks {
		maxID = max(maxID, task.ID)
	}
	return maxID + 1
}

// indexOf returns the position of the first task with id, or -1.
func (s *FileTaskStore) indexOf(id int) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// AddTask appends a new task and persists the list.
func (s *FileTaskStore) AddTask(topic, description string, status models.TaskStatus) (models.Task, error) {
	if !status.IsValid() {
		return models.Task{}, fmt.Errorf("%w %q", ErrInvalidStatus, status)
	}

	task := models.Task{
		ID:          s.nextID(),
		Topic:       topic,
		Description: description,
		Status:      status,
	}
	if err := models.ValidateStruct(task); err != nil {
		return models.Task{}, fmt.Errorf("validation failed for new task: %w", err)
	}

	s.tasks = append(s.tasks, task)
	if err := s.Save(); err != nil {
		s.tasks = s.tasks[:len(s.tasks)-1]
		return models.Task{}, fmt.Errorf("failed to save new task: %w", err)
	}
	return task, nil
}

// ListTasks returns a copy of the tasks in store order.
func (s *FileTaskStore) ListTasks() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// FindTask performs a linear scan for id.
func (s *FileTaskStore) FindTask(id int) (models.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("task with ID %d: %w", id, ErrTaskNotFound)
	}
	return s.tasks[i], nil
}

// UpdateTask replaces the topic and description of a task in place.
func (s *FileTaskStore) UpdateTask(id int, topic, description string) (models.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("task with ID %d: %w", id, ErrTaskNotFound)
	}

	original := s.tasks[i]
	s.tasks[i].Topic = topic
	s.tasks[i].Description = description

	if err := s.Save(); err != nil {
		s.tasks[i] = original
		return models.Task{}, fmt.Errorf("failed to save updated task: %w", err)
	}
	return s.tasks[i], nil
}

// ChangeStatus sets the status of a task. The task is looked up before the
// status is validated, so an unknown id wins over an invalid status.
func (s *FileTaskStore) ChangeStatus(id int, status models.TaskStatus) (models.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("task with ID %d: %w", id, ErrTaskNotFound)
	}
	if !status.IsValid() {
		return models.Task{}, fmt.Errorf("%w %q", ErrInvalidStatus, status)
	}

	original := s.tasks[i]
	s.tasks[i].Status = status

	if err := s.Save(); err != nil {
		s.tasks[i] = original
		return models.Task{}, fmt.Errorf("failed to save status change: %w", err)
	}
	return s.tasks[i], nil
}

var _ TaskStore = (*FileTaskStore)(nil)
