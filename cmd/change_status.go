package cmd

import (
	"fmt"
	"strconv"

	"github.com/josephgoksu/todo/models"
	"github.com/spf13/cobra"
)

func newChangeStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "change_status <task_id> <status>",
		Short: "Change the status of a task",
		Long: `Set a new status on a task. Any status may follow any other.

Status must be one of: incomplete, in progress, complete.`,
		Example: `  todo change_status 1 complete
  todo change_status 2 "in progress"`,
		Args: usageArgs(cobra.ExactArgs(2), taskIDArg(0), statusArg(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := strconv.Atoi(args[0])
			status := models.TaskStatus(args[1])

			s, err := a.openStore(cmd, true)
			if err != nil {
				return err
			}

			task, err := s.ChangeStatus(id, status)
			if err != nil {
				return printStoreError(cmd.OutOrStdout(), id, args[1], err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Status of task ID %d changed to '%s'.\n", task.ID, task.Status)
			printSaved(out, s)
			return nil
		},
	}
}
