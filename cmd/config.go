package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/josephgoksu/todo/internal/config"
	"github.com/josephgoksu/todo/internal/logger"
	"github.com/josephgoksu/todo/models"
	"github.com/josephgoksu/todo/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initConfig reads in the config file and ENV variables if set, then
// builds the diagnostics logger from the result.
func (a *app) initConfig(cmd *cobra.Command) error {
	// A missing .env file is fine.
	_ = godotenv.Load()

	v := a.v
	v.SetFs(a.fs)
	v.SetEnvPrefix(config.EnvPrefix)                  // e.g., TODO_LOG_LEVEL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // log.level -> LOG_LEVEL
	v.AutomaticEnv()

	defaults := types.DefaultAppConfig()
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("display.color", defaults.Display.Color)

	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home) // $HOME/.todo.yaml
		}
		v.AddConfigPath(".") // ./.todo.yaml
		v.SetConfigName(config.ConfigName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := defaults
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}
	cfg.Config = a.cfgFile
	if err := models.ValidateStruct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	a.logger = logger.New(cmd.ErrOrStderr(), cfg.Log, cfg.Verbose)
	if used := v.ConfigFileUsed(); used != "" {
		a.logger.Debug("using config file", "path", used)
	}
	a.logger.Debug("resolved todo list", "path", a.listPath())
	return nil
}
