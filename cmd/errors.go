package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/josephgoksu/todo/models"
	"github.com/josephgoksu/todo/store"
	"github.com/spf13/cobra"
)

// usageError marks a problem with how the command was invoked: a wrong
// argument count, a bad status choice, a non-integer id or an unknown
// command or flag.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// ExitCode lets main exit with 2, the conventional code for bad usage.
func (e *usageError) ExitCode() int { return 2 }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// usageArgs runs the validators in order and marks any failure as a usage error.
func usageArgs(fns ...cobra.PositionalArgs) cobra.PositionalArgs {
	check := cobra.MatchAll(fns...)
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			var ue *usageError
			if errors.As(err, &ue) {
				return err
			}
			return &usageError{err: err}
		}
		return nil
	}
}

// taskIDArg requires args[i] to be an integer.
func taskIDArg(i int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if _, err := strconv.Atoi(args[i]); err != nil {
			return usageErrorf("invalid task_id %q: must be an integer", args[i])
		}
		return nil
	}
}

// statusArg requires args[i] to be one of the task statuses.
func statusArg(i int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if _, err := models.ParseStatus(args[i]); err != nil {
			return usageErrorf("invalid status %q (choose from %s)", args[i], models.StatusNames())
		}
		return nil
	}
}

// printStoreError prints the user-facing message for lookup and status
// errors and swallows them; the process still exits 0 for those.
// Any other error is returned unchanged.
func printStoreError(w io.Writer, id int, status string, err error) error {
	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		fmt.Fprintf(w, "Error: Task with ID %d not found.\n", id)
		return nil
	case errors.Is(err, store.ErrInvalidStatus):
		fmt.Fprintf(w, "Error: Invalid status '%s'. Valid statuses are %s.\n", status, models.StatusNames())
		return nil
	default:
		return err
	}
}
