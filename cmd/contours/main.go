// contours - 2D circle and polyline intersection toolkit
//
// Commands:
//
//	intersect   Classify and compute the intersection of two circles
//	view        Watch two circles intersect in the terminal
//	pline       Polyline utilities (info, debug JSON)
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "contours",
		Short: "2D circle and polyline intersection toolkit",
		Long: `contours - 2D circle and polyline intersection toolkit

Computes circle-circle intersections with tolerance-based comparisons and
renders the configurations in the terminal. Polylines use bulge arcs in the
same format as the debug JSON dumps.`,
	}

	root.AddCommand(newIntersectCmd())
	root.AddCommand(newViewCmd())
	root.AddCommand(newPlineCmd())

	if err := fang.Execute(context.Background(), root); err != nil {
		os.Exit(1)
	}
}
