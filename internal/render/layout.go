// Package render draws a roster as a circular SVG diagram: members evenly
// spaced on a circle, one line per declared collaboration, then a labelled
// node per member on top of the lines.
package render

import (
	"fmt"
	"math"

	"github.com/kingrea/teamalys3r/internal/analysis"
	"github.com/kingrea/teamalys3r/internal/config"
	"github.com/kingrea/teamalys3r/internal/roster"
)

// ErrEmptyRoster is returned when there is nothing to place on the circle.
var ErrEmptyRoster = fmt.Errorf("render: %w", analysis.ErrEmptyRoster)

// Point is a position on the canvas.
type Point struct {
	X, Y float64
}

// Edge connects member From to member To, both indexes into the roster's
// member order.
type Edge struct {
	From, To int
}

// Layout places n points on the configured circle. Point i sits at
// i*(360/n) degrees, measured from the positive x axis towards positive y.
func Layout(n int, cfg config.Render) ([]Point, error) {
	if n <= 0 {
		return nil, ErrEmptyRoster
	}
	step := 360 / float64(n)
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		theta := step * float64(i) * (math.Pi / 180)
		points[i] = Point{
			X: cfg.CenterX + cfg.LayoutRadius*math.Cos(theta),
			Y: cfg.CenterY + cfg.LayoutRadius*math.Sin(theta),
		}
	}
	return points, nil
}

// Edges lists one edge per ordered pair (i, j) where member j appears in
// member i's list. A collaboration declared from both sides yields two edges.
func Edges(r *roster.Roster) []Edge {
	members := r.Members()
	var edges []Edge
	for i, member := range members {
		for j, other := range members {
			if r.WorkedWith(member, other) {
				edges = append(edges, Edge{From: i, To: j})
			}
		}
	}
	return edges
}
