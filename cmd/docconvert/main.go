package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/docconvert/cmd"
)

func main() {
	rootCmd, env := cmd.NewRootCommand()

	rootCmd.AddCommand(cmd.NewEncodeCommand(env))
	rootCmd.AddCommand(cmd.NewDecodeCommand(env))
	rootCmd.AddCommand(cmd.NewInspectCommand(env))
	rootCmd.AddCommand(cmd.NewVersionCommand())

	err := rootCmd.ExecuteContext(context.Background())
	_ = env.Close()
	if err != nil {
		os.Exit(1)
	}
}
