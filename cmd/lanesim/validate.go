package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/decker502/lanehop/pkg/config"
	"github.com/decker502/lanehop/pkg/input"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <level file>...",
		Short: "Check that level files parse, pass validation and use known key names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := validateLevels(cmd.OutOrStdout(), args)
			if failed > 0 {
				return fmt.Errorf("%d of %d level files are invalid", failed, len(args))
			}
			return nil
		},
	}
}

// validateLevels 逐个检查关卡文件，返回失败数量
func validateLevels(w io.Writer, paths []string) int {
	failed := 0
	for _, path := range paths {
		cfg, err := config.LoadLevelConfig(path)
		if err == nil {
			_, err = input.ParseBindings(cfg.Keys)
		}
		if err != nil {
			printError(w, "%s", path)
			printDetail(w, "%v", err)
			failed++
			continue
		}
		printSuccess(w, "%s: %q, %d rows, start row %d, %d props",
			path, cfg.Name, len(cfg.Lanes.Rows), cfg.Lanes.StartRow(), len(cfg.Props))
	}
	return failed
}
