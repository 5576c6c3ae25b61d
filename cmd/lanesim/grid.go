package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/decker502/lanehop/pkg/config"
	"github.com/decker502/lanehop/pkg/lanes"
)

func newGridCmd() *cobra.Command {
	rows := config.DefaultLevelConfig().Lanes.Rows
	var y float64

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the row table, the band center and the nearest row to a Y",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := lanes.NewRowGrid(rows)
			if err != nil {
				return err
			}
			var query *float64
			if cmd.Flags().Changed("y") {
				query = &y
			}
			printGrid(cmd.OutOrStdout(), grid, query)
			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&rows, "rows", rows, "world Y of each row, index order")
	cmd.Flags().Float64Var(&y, "y", 0, "world Y to look up the nearest row for")

	return cmd
}

// printGrid 输出行表；query 非空时附带最近行查询结果
func printGrid(w io.Writer, grid *lanes.RowGrid, query *float64) {
	fmt.Fprintf(w, "%4s %9s\n", "row", "y")
	for i, rowY := range grid.Rows() {
		fmt.Fprintf(w, "%4d %9.4f\n", i, rowY)
	}
	fmt.Fprintf(w, "center %.4f\n", grid.CenterY())

	if query != nil {
		fmt.Fprintf(w, "nearest(%.4f) = row %d (y %.4f)\n",
			*query, grid.NearestIndex(*query), grid.NearestRow(*query))
	}
}
