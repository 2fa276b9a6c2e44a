package main

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/DerLando/cavalier-contours/internal/env"
	"github.com/DerLando/cavalier-contours/pkg/math2d"
	"github.com/DerLando/cavalier-contours/pkg/render"
)

const (
	maxViewFrames = 600
	springFreq    = 4.0
	springDamping = 0.9
)

func newViewCmd() *cobra.Command {
	var (
		r1, r2 float64
		c1     []float64
		from   []float64
		to     []float64
		fps    int
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Watch two circles intersect in the terminal",
		Long: `Renders both circles and their intersection points as half-block
pixels. The second circle's center is spring-animated from --from to --to so
the classification can be watched flipping between regimes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			center1, err := parseCenter("c1", c1)
			if err != nil {
				return err
			}
			start, err := parseCenter("from", from)
			if err != nil {
				return err
			}
			target, err := parseCenter("to", to)
			if err != nil {
				return err
			}
			if fps < 1 {
				return fmt.Errorf("--fps must be positive, got %d", fps)
			}
			return runView(cmd, r1, center1, r2, start, target, fps)
		},
	}

	cmd.Flags().Float64Var(&r1, "r1", 1, "Radius of the first circle")
	cmd.Flags().Float64SliceVar(&c1, "c1", []float64{0, 0}, "Center of the first circle (x,y)")
	cmd.Flags().Float64Var(&r2, "r2", 1, "Radius of the second circle")
	cmd.Flags().Float64SliceVar(&from, "from", []float64{3, 0}, "Start center of the second circle (x,y)")
	cmd.Flags().Float64SliceVar(&to, "to", []float64{0.5, 0}, "Target center of the second circle (x,y)")
	cmd.Flags().IntVar(&fps, "fps", env.GetInt("CONTOURS_FPS", 30), "Target FPS")

	return cmd
}

func runView(cmd *cobra.Command, r1 float64, c1 math2d.Vec2[float64], r2 float64, start, target math2d.Vec2[float64], fps int) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	} else {
		log.Warn("not a terminal, using default size", "width", width, "height", height)
	}
	// leave room for the status line
	canvas := render.NewCanvas(width, height-2)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	spring := harmonica.NewSpring(harmonica.FPS(fps), springFreq, springDamping)
	pos := start
	var vel math2d.Vec2[float64]

	// world extents covering both circles over the whole animation
	minX := math.Min(c1.X-r1, math.Min(start.X-r2, target.X-r2))
	maxX := math.Max(c1.X+r1, math.Max(start.X+r2, target.X+r2))
	minY := math.Min(c1.Y-r1, math.Min(start.Y-r2, target.Y-r2))
	maxY := math.Max(c1.Y+r1, math.Max(start.Y+r2, target.Y+r2))

	out := cmd.OutOrStdout()
	fmt.Fprint(out, "\x1b[2J\x1b[?25l") // clear screen, hide cursor
	defer fmt.Fprint(out, "\x1b[?25h\n")

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	var res math2d.CircleCircleIntersect[float64]
	for frame := 0; frame < maxViewFrames; frame++ {
		pos.X, vel.X = spring.Update(pos.X, vel.X, target.X)
		pos.Y, vel.Y = spring.Update(pos.Y, vel.Y, target.Y)

		res = math2d.IntersectCircleCircle(r1, c1, r2, pos)

		canvas.Clear()
		vp := render.FitViewport(canvas, minX, minY, maxX, maxY, 0.05)
		vp.Circle(c1, r1)
		vp.Circle(pos, r2)
		switch res.Kind {
		case math2d.TangentIntersect:
			vp.Marker(res.Point1)
		case math2d.TwoIntersects:
			vp.Marker(res.Point1)
			vp.Marker(res.Point2)
		}

		fmt.Fprintf(out, "\x1b[H%s\n%s\x1b[K", canvas.Frame(), statusLine(res))

		settled := pos.FuzzyEq(target) && math2d.FuzzyEqZero(vel.Len())
		if settled {
			break
		}

		select {
		case <-ctx.Done():
			log.Info("interrupted")
			return nil
		case <-ticker.C:
		}
	}

	log.Info("final classification", "kind", res.Kind, "center2", fmt.Sprintf("(%g, %g)", pos.X, pos.Y))
	return nil
}

func statusLine(res math2d.CircleCircleIntersect[float64]) string {
	s := kindStyle.Render(res.Kind.String())
	for _, p := range resultPoints(res) {
		s += pointStyle.Render(fmt.Sprintf("  (%.4f, %.4f)", p[0], p[1]))
	}
	return s
}
