package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DerLando/cavalier-contours/pkg/polyline"
)

func newPlineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pline",
		Short: "Polyline utilities",
	}
	cmd.AddCommand(newPlineInfoCmd())
	return cmd
}

func newPlineInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <polyline.json>",
		Short: "Display polyline information",
		Long:  "Reads a polyline from a debug JSON file and prints vertex, segment and arc statistics.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read polyline: %w", err)
			}
			p, err := polyline.ParseDebugJSON(data)
			if err != nil {
				return err
			}

			arcs := 0
			for _, v := range p.Vertexes() {
				if v.IsArc() {
					arcs++
				}
			}

			cmd.Printf("Closed:    %v\n", p.IsClosed())
			cmd.Printf("Vertexes:  %d\n", p.VertexCount())
			cmd.Printf("Segments:  %d (%d arcs)\n", p.SegmentCount(), arcs)

			if minPt, maxPt, ok := p.Extents(); ok {
				cmd.Printf("Extents:   (%g, %g) to (%g, %g)\n", minPt.X, minPt.Y, maxPt.X, maxPt.Y)
			}

			for i := 0; i < p.SegmentCount(); i++ {
				a, b := p.Segment(i)
				if !a.IsArc() {
					continue
				}
				radius, center := polyline.SegArcRadiusAndCenter(a, b)
				cmd.Printf("  arc %d: radius %g, center (%g, %g)\n", i, radius, center.X, center.Y)
			}
			return nil
		},
	}
}
