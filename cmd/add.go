/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/todo/models"
	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <topic> <description> <status>",
		Short: "Add a new task",
		Long: `Add a task to the list. The new task gets the next free ID,
one above the highest ID in the file.

Status must be one of: incomplete, in progress, complete.`,
		Example: `  todo add Groceries "Buy milk" incomplete
  todo add Work "Write report" "in progress" --list-name work.txt`,
		Args: usageArgs(cobra.ExactArgs(3), statusArg(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic, description, status := args[0], args[1], models.TaskStatus(args[2])

			s, err := a.openStore(cmd, true)
			if err != nil {
				return err
			}

			task, err := s.AddTask(topic, description, status)
			if err != nil {
				return printStoreError(cmd.OutOrStdout(), 0, args[2], err)
			}

			out := cmd.OutOrStdout()
			printSaved(out, s)
			fmt.Fprintf(out, "Task added: ID %d, Topic: '%s', Status: '%s'.\n", task.ID, task.Topic, task.Status)
			return nil
		},
	}
}
