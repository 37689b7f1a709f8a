/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/josephgoksu/todo/cmd"
	"github.com/josephgoksu/todo/internal/config"
	"github.com/josephgoksu/todo/internal/logger"
)

type exitCoder interface {
	ExitCode() int
}

func main() {
	logger.SetCrashDir(config.GetCrashLogDir())
	defer logger.HandlePanic()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		code := 1
		var ec exitCoder
		if errors.As(err, &ec) {
			code = ec.ExitCode()
		}
		os.Exit(code)
	}
}
