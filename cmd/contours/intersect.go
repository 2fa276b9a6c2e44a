package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/DerLando/cavalier-contours/pkg/math2d"
)

var (
	kindStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	pointStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// intersectOutput is the machine-readable shape printed with --json.
type intersectOutput struct {
	Kind   string       `json:"kind"`
	Points [][2]float64 `json:"points"`
}

func newIntersectCmd() *cobra.Command {
	var (
		r1, r2 float64
		c1, c2 []float64
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "intersect",
		Short: "Classify and compute the intersection of two circles",
		RunE: func(cmd *cobra.Command, args []string) error {
			center1, err := parseCenter("c1", c1)
			if err != nil {
				return err
			}
			center2, err := parseCenter("c2", c2)
			if err != nil {
				return err
			}

			res := math2d.IntersectCircleCircle(r1, center1, r2, center2)

			if asJSON {
				out := intersectOutput{Kind: res.Kind.String(), Points: resultPoints(res)}
				b, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal result: %w", err)
				}
				cmd.Println(string(b))
				return nil
			}

			cmd.Println(kindStyle.Render(res.Kind.String()))
			for _, p := range resultPoints(res) {
				cmd.Println(pointStyle.Render(fmt.Sprintf("  (%g, %g)", p[0], p[1])))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&r1, "r1", 1, "Radius of the first circle")
	cmd.Flags().Float64SliceVar(&c1, "c1", []float64{0, 0}, "Center of the first circle (x,y)")
	cmd.Flags().Float64Var(&r2, "r2", 1, "Radius of the second circle")
	cmd.Flags().Float64SliceVar(&c2, "c2", []float64{0, 0}, "Center of the second circle (x,y)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}

func parseCenter(name string, coords []float64) (math2d.Vec2[float64], error) {
	if len(coords) != 2 {
		return math2d.Vec2[float64]{}, fmt.Errorf("--%s expects two values (x,y), got %d", name, len(coords))
	}
	return math2d.V2(coords[0], coords[1]), nil
}

func resultPoints(res math2d.CircleCircleIntersect[float64]) [][2]float64 {
	switch res.Kind {
	case math2d.TangentIntersect:
		return [][2]float64{{res.Point1.X, res.Point1.Y}}
	case math2d.TwoIntersects:
		return [][2]float64{{res.Point1.X, res.Point1.Y}, {res.Point2.X, res.Point2.Y}}
	default:
		return [][2]float64{}
	}
}
