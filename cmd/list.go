package cmd

import (
	"github.com/josephgoksu/todo/internal/ui"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Long:  "Print every task in file order, or a notice when the list is empty.",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(cmd, true)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return ui.RenderTaskList(out, s.ListTasks(), ui.NewRenderer(out, a.cfg.Display.Color))
		},
	}
}
