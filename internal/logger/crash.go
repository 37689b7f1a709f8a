package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

// MaxCrashLogs is the maximum number of crash logs to keep
const MaxCrashLogs = 10

// CrashContext stores context for crash logging.
type CrashContext struct {
	mu       sync.RWMutex
	command  string
	args     string
	listName string
	version  string
	dir      string
}

// globalContext is the singleton crash context.
var globalContext = &CrashContext{}

// SetCrashDir sets the directory crash logs are written to.
func SetCrashDir(dir string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.dir = dir
}

// SetVersion sets the application version for crash logs.
func SetVersion(version string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.version = version
}

// SetCommand records the command being executed and its arguments.
func SetCommand(cmd string, args []string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.command = cmd
	globalContext.args = truncateForLog(strings.Join(args, " "), 500)
}

// SetListName records the todo list file in use.
func SetListName(name string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.listName = name
}

func truncateForLog(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "... [truncated]"
}

// CrashLog represents a crash log entry.
type CrashLog struct {
	Timestamp  time.Time `json:"timestamp"`
	Version    string    `json:"version"`
	Command    string    `json:"command"`
	Args       string    `json:"args,omitempty"`
	ListName   string    `json:"list_name,omitempty"`
	PanicValue string    `json:"panic_value"`
	StackTrace string    `json:"stack_trace"`
	GoVersion  string    `json:"go_version"`
	OS         string    `json:"os"`
	Arch       string    `json:"arch"`
}

// HandlePanic is a deferred function that recovers from panics and logs them.
// Usage: defer logger.HandlePanic()
func HandlePanic() {
	if r := recover(); r != nil {
		reportCrash(os.Stderr, r)
		os.Exit(1)
	}
}

func reportCrash(w io.Writer, panicValue any) {
	crash := createCrashLog(panicValue)
	path, err := writeCrashLog(crash)
	if err != nil {
		fmt.Fprintf(w, "\n[CRASH] Failed to write crash log: %v\n", err)
		fmt.Fprintf(w, "[CRASH] Panic: %v\n%s\n", panicValue, crash.StackTrace)
		return
	}

	fmt.Fprintf(w, "\ntodo encountered an unexpected error.\n")
	fmt.Fprintf(w, "A crash log has been saved to:\n  %s\n", path)
}

// createCrashLog creates a CrashLog from a panic value.
func createCrashLog(panicValue any) CrashLog {
	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()

	return CrashLog{
		Timestamp:  time.Now(),
		Version:    globalContext.version,
		Command:    globalContext.command,
		Args:       globalContext.args,
		ListName:   globalContext.listName,
		PanicValue: fmt.Sprintf("%v", panicValue),
		StackTrace: string(debug.Stack()),
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
	}
}

// writeCrashLog writes a crash log to disk and returns its path.
func writeCrashLog(crash CrashLog) (string, error) {
	dir := getCrashLogDir()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create crash log dir: %w", err)
	}

	if err := cleanOldCrashLogs(dir); err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] Failed to clean old crash logs: %v\n", err)
	}

	path := getCrashLogPath(dir, crash.Timestamp)
	if err := os.WriteFile(path, []byte(formatCrashLog(crash)), 0o644); err != nil {
		return "", fmt.Errorf("write crash log: %w", err)
	}
	return path, nil
}

func getCrashLogDir() string {
	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()
	if globalContext.dir == "" {
		return filepath.Join(".todo", "crash_logs")
	}
	return globalContext.dir
}

func getCrashLogPath(dir string, t time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("crash_%s.log", t.Format("20060102_150405")))
}

// formatCrashLog formats a CrashLog as human-readable text.
func formatCrashLog(crash CrashLog) string {
	var sb strings.Builder
	rule := strings.Repeat("-", 80) + "\n"

	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString("TODO CRASH LOG\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")

	fmt.Fprintf(&sb, "Timestamp: %s\n", crash.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&sb, "Version:   %s\n", crash.Version)
	fmt.Fprintf(&sb, "Command:   %s\n", crash.Command)
	if crash.Args != "" {
		fmt.Fprintf(&sb, "Args:      %s\n", crash.Args)
	}
	if crash.ListName != "" {
		fmt.Fprintf(&sb, "List:      %s\n", crash.ListName)
	}
	fmt.Fprintf(&sb, "Go:        %s\n", crash.GoVersion)
	fmt.Fprintf(&sb, "OS/Arch:   %s/%s\n", crash.OS, crash.Arch)

	sb.WriteString("\n" + rule + "PANIC VALUE\n" + rule)
	sb.WriteString(crash.PanicValue + "\n")

	sb.WriteString("\n" + rule + "STACK TRACE\n" + rule)
	sb.WriteString(crash.StackTrace)

	sb.WriteString("\n" + strings.Repeat("=", 80) + "\n")
	sb.WriteString("END OF CRASH LOG\n")
	return sb.String()
}

// cleanOldCrashLogs removes old crash logs, keeping only MaxCrashLogs-1 so
// the log about to be written keeps the total at MaxCrashLogs.
func cleanOldCrashLogs(dir string) error {
	logs, err := listCrashLogs(dir)
	if err != nil || len(logs) < MaxCrashLogs {
		return err
	}

	// os.ReadDir returns entries sorted by name, and names embed the timestamp.
	for _, path := range logs[:len(logs)-MaxCrashLogs+1] {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove old crash log %s: %w", filepath.Base(path), err)
		}
	}
	return nil
}

func listCrashLogs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var logs []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "crash_") && strings.HasSuffix(e.Name(), ".log") {
			logs = append(logs, filepath.Join(dir, e.Name()))
		}
	}
	return logs, nil
}

// ListCrashLogs returns all crash logs in the configured crash log directory.
func ListCrashLogs() ([]string, error) {
	return listCrashLogs(getCrashLogDir())
}
