/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/josephgoksu/todo/internal/config"
	"github.com/josephgoksu/todo/internal/logger"
	"github.com/josephgoksu/todo/types"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is the application version.
var version = "0.1.0"

const commandHint = "Use 'add', 'list', 'change_status', or 'update'."

// app carries the state shared by the commands of one root.
type app struct {
	fs     afero.Fs
	v      *viper.Viper
	cfg    types.AppConfig
	logger *log.Logger

	cfgFile  string
	listName string
}

// Option configures the root command.
type Option func(*app)

// WithFs sets the filesystem used for the todo list, config and exports.
func WithFs(fs afero.Fs) Option {
	return func(a *app) {
		if fs != nil {
			a.fs = fs
		}
	}
}

// NewRootCmd creates the root command for todo.
func NewRootCmd(opts ...Option) *cobra.Command {
	a := &app{
		fs:     afero.NewOsFs(),
		v:      viper.New(),
		cfg:    types.DefaultAppConfig(),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:   "todo",
		Short: "Manage your TODO list.",
		Long: `todo keeps a single-user task list in a plain-text file.
Tasks have a topic, a description and a status of incomplete,
in progress or complete. The list lives in TODO.txt unless
--list-name points somewhere else.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(cmd); err != nil {
				return err
			}
			logger.SetCommand(cmd.CommandPath(), args)
			logger.SetListName(a.listPath())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Error: No command provided. "+commandHint)
				return nil
			}
			return usageErrorf("Unknown command %q. %s", args[0], commandHint)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	root.PersistentFlags().StringVar(&a.listName, "list-name", "", "name of the TODO list file (default \""+config.DefaultListName+"\")")
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $HOME/.todo.yaml or ./.todo.yaml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	_ = a.v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newChangeStatusCmd(a),
		newUpdateCmd(a),
		newExportCmd(a),
	)

	return root
}

// Execute builds the root command and runs it against os.Args.
// This is called by main.main().
func Execute() error {
	logger.SetVersion(version)
	return NewRootCmd().Execute()
}

// listPath resolves the --list-name flag, falling back to the default file.
func (a *app) listPath() string {
	return config.ResolveListName(a.listName)
}
