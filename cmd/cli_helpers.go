package cmd

import (
	"fmt"
	"io"

	"github.com/josephgoksu/todo/store"
	"github.com/spf13/cobra"
)

// openStore loads the todo list selected by --list-name. When announce is
// set, a missing file is reported on stdout before the command runs.
func (a *app) openStore(cmd *cobra.Command, announce bool) (*store.FileTaskStore, error) {
	s := store.NewFileTaskStore(a.fs, a.listPath(), store.WithLogger(a.logger))
	res, err := s.Load()
	if err != nil {
		return nil, err
	}
	if res.Missing && announce {
		fmt.Fprintf(cmd.OutOrStdout(), "The file '%s' doesn't exist. Starting with an empty TODO list.\n", s.Path())
	}
	if res.Skipped > 0 {
		a.logger.Debug("some lines could not be read", "path", s.Path(), "skipped", res.Skipped)
	}
	return s, nil
}

func printSaved(w io.Writer, s store.TaskStore) {
	fmt.Fprintf(w, "TODO list saved to '%s'.\n", s.Path())
}
