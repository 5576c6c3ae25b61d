// lanesim 在终端中无界面地运行车道模型
//
// 用法：
//
//	go run ./cmd/lanesim run --frames 30 --press 0:up,10:down
//	go run ./cmd/lanesim run --level data/levels/default.yaml --press 0:down
//	go run ./cmd/lanesim grid --rows 2,1,0,-1,-2 --y 0.4
//	go run ./cmd/lanesim validate data/levels/*.yaml data/levels/*.toml
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "lanesim",
		Short:        "Headless simulator for the lane row grid and lane mover",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			bridgeStdLog(logger)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging (system logs on stderr)")

	root.AddCommand(newRunCmd())
	root.AddCommand(newGridCmd())
	root.AddCommand(newValidateCmd())
	return root
}
