package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/josephgoksu/todo/store"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks as JSON, YAML or TOML",
		Long: `Write the current list in a structured format, either to stdout
or to the file given by --output. The list file itself is not changed.`,
		Example: `  todo export
  todo export --format yaml --output tasks.yaml`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(cmd, false)
			if err != nil {
				return err
			}

			tasks := s.ListTasks()
			data, err := store.Export(tasks, format)
			if err != nil {
				return &usageError{err: err}
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if dir := filepath.Dir(output); dir != "." {
				if err := a.fs.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("failed to create directory %s: %w", dir, err)
				}
			}
			if err := afero.WriteFile(a.fs, output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write export file %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tasks to '%s'.\n", len(tasks), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", store.FormatJSON, "output format ("+strings.Join(store.ExportFormats(), ", ")+")")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}
