package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newUpdateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "update <task_id> <new_topic> <new_description>",
		Short:   "Update a task's details",
		Long:    "Replace the topic and description of a task. The status is kept.",
		Example: `  todo update 1 Shopping "Buy bread and milk"`,
		Args:    usageArgs(cobra.ExactArgs(3), taskIDArg(0)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := strconv.Atoi(args[0])

			s, err := a.openStore(cmd, true)
			if err != nil {
				return err
			}

			task, err := s.UpdateTask(id, args[1], args[2])
			if err != nil {
				return printStoreError(cmd.OutOrStdout(), id, "", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Task ID %d updated: Topic: '%s', Description: '%s'.\n", task.ID, task.Topic, task.Description)
			printSaved(out, s)
			return nil
		},
	}
}
