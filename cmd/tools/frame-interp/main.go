// Command frame-interp interpolates between two rigid poses and prints the
// intermediate frames.
//
// Poses are given as "x,y,z,roll,pitch,yaw" with translation in metres and
// angles in degrees (fixed-axis XYZ). This is useful for sanity-checking
// camera paths before feeding them to the visualiser.
//
// Usage:
//
//	go run ./cmd/tools/frame-interp [flags]
//
// Flags:
//
//	-from   Start pose (default: origin)
//	-to     End pose (default: "1,0,0,0,0,90")
//	-steps  Number of interpolation steps (default: 10)
//	-plot   Write an X/Y path plot to the given PNG file
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/lightfield-viz/lightfield/frame"
)

func main() {
	from := flag.String("from", "0,0,0,0,0,0", "Start pose as x,y,z,roll,pitch,yaw (deg)")
	to := flag.String("to", "1,0,0,0,0,90", "End pose as x,y,z,roll,pitch,yaw (deg)")
	steps := flag.Int("steps", 10, "Number of interpolation steps")
	plotFile := flag.String("plot", "", "Write an X/Y path plot to this PNG file")
	flag.Parse()

	a, err := parsePose(*from)
	if err != nil {
		log.Fatalf("parsing -from: %v", err)
	}
	b, err := parsePose(*to)
	if err != nil {
		log.Fatalf("parsing -to: %v", err)
	}
	if *steps < 1 {
		log.Fatalf("-steps must be at least 1, got %d", *steps)
	}

	path := make(plotter.XYs, 0, *steps+1)
	fmt.Printf("%8s  %24s  %24s\n", "weight", "position (x y z)", "rpy deg (r p y)")
	for i := 0; i <= *steps; i++ {
		w := float64(i) / float64(*steps)
		c := frame.Interpolate(a, b, w)
		pos, _ := frame.PoseFromTransform(c)
		rpy := frame.RollPitchYawFromTransform(c)
		fmt.Printf("%8.3f  %8.3f %7.3f %7.3f  %8.2f %7.2f %7.2f\n",
			w, pos.X, pos.Y, pos.Z,
			degrees(rpy.Roll), degrees(rpy.Pitch), degrees(rpy.Yaw))
		path = append(path, plotter.XY{X: pos.X, Y: pos.Y})
	}

	if *plotFile != "" {
		if err := writePlot(*plotFile, path); err != nil {
			log.Fatalf("writing plot: %v", err)
		}
		log.Printf("Wrote path plot to %s", *plotFile)
	}
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// parsePose builds a transform from "x,y,z,roll,pitch,yaw" (degrees).
func parsePose(s string) (*frame.Transform, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return nil, fmt.Errorf("pose %q: want 6 comma-separated values, got %d", s, len(parts))
	}
	vals := make([]float64, 6)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("pose %q: %w", s, err)
		}
		vals[i] = v
	}
	pos := r3.Vec{X: vals[0], Y: vals[1], Z: vals[2]}
	rpy := frame.RPY{Roll: vals[3], Pitch: vals[4], Yaw: vals[5]}
	return frame.FromPositionRPYDegrees(pos, rpy), nil
}

func writePlot(file string, path plotter.XYs) error {
	p := plot.New()
	p.Title.Text = "Interpolated frame path"
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m)"

	line, points, err := plotter.NewLinePoints(path)
	if err != nil {
		return err
	}
	p.Add(line, points, plotter.NewGrid())

	return p.Save(6*vg.Inch, 6*vg.Inch, file)
}
