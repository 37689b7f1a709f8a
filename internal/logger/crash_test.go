package logger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func resetCrashContext(t *testing.T, dir string) {
	t.Helper()
	prev := globalContext
	globalContext = &CrashContext{}
	SetCrashDir(dir)
	t.Cleanup(func() { globalContext = prev })
}

func TestCrashHandler_SetContext(t *testing.T) {
	resetCrashContext(t, "/tmp/test-todo")

	SetVersion("1.0.0-test")
	SetCommand("todo add", []string{"Groceries", "Buy milk", "incomplete"})
	SetListName("TODO.txt")

	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()

	if globalContext.dir != "/tmp/test-todo" {
		t.Errorf("Expected dir '/tmp/test-todo', got '%s'", globalContext.dir)
	}
	if globalContext.version != "1.0.0-test" {
		t.Errorf("Expected version '1.0.0-test', got '%s'", globalContext.version)
	}
	if globalContext.command != "todo add" {
		t.Errorf("Expected command 'todo add', got '%s'", globalContext.command)
	}
	if globalContext.args != "Groceries Buy milk incomplete" {
		t.Errorf("Expected joined args, got '%s'", globalContext.args)
	}
	if globalContext.listName != "TODO.txt" {
		t.Errorf("Expected listName 'TODO.txt', got '%s'", globalContext.listName)
	}
}

func TestCrashHandler_SetCommand_Truncation(t *testing.T) {
	resetCrashContext(t, t.TempDir())

	SetCommand("todo add", []string{strings.Repeat("a", 3000)})

	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()
	if len(globalContext.args) > 600 {
		t.Errorf("Expected args to be truncated, got length %d", len(globalContext.args))
	}
	if !strings.HasSuffix(globalContext.args, "[truncated]") {
		t.Error("Expected truncated args to end with '[truncated]'")
	}
}

func TestCrashHandler_ReportCrash(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "crash_logs")
	resetCrashContext(t, dir)
	SetVersion("1.0.0-test")
	SetCommand("todo list", nil)

	var out bytes.Buffer
	reportCrash(&out, "boom")

	if !strings.Contains(out.String(), "A crash log has been saved to:") {
		t.Fatalf("unexpected crash notice: %q", out.String())
	}

	logs, err := ListCrashLogs()
	if err != nil {
		t.Fatalf("ListCrashLogs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 crash log, got %d", len(logs))
	}

	content, err := os.ReadFile(logs[0])
	if err != nil {
		t.Fatalf("read crash log: %v", err)
	}
	for _, want := range []string{"TODO CRASH LOG", "Version:   1.0.0-test", "Command:   todo list", "boom", "STACK TRACE"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("crash log missing %q", want)
		}
	}
}

func TestCleanOldCrashLogs(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i := 0; i < MaxCrashLogs+2; i++ {
		path := getCrashLogPath(dir, base.Add(time.Duration(i)*time.Second))
		if err := os.WriteFile(path, []byte(fmt.Sprintf("log %d", i)), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := cleanOldCrashLogs(dir); err != nil {
		t.Fatalf("cleanOldCrashLogs: %v", err)
	}

	logs, err := listCrashLogs(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != MaxCrashLogs-1 {
		t.Errorf("expected %d logs after cleanup, got %d", MaxCrashLogs-1, len(logs))
	}
	if _, err := os.Stat(getCrashLogPath(dir, base)); !os.IsNotExist(err) {
		t.Error("expected oldest crash log to be removed")
	}
	if _, err := os.Stat(filepath.Join(dir, "notes.txt")); err != nil {
		t.Error("non crash-log files must be left alone")
	}
}
