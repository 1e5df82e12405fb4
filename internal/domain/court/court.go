// Package court describes a half court in shot-chart coordinates: tenths of
// a foot, hoop centre at the origin, baseline at y=-47.5.
package court

import "math"

// Plot bounds used by shot charts.
const (
	MinX = -250.0
	MaxX = 250.0
	MinY = -47.5
	MaxY = 422.5
)

type Point struct {
	X float64
	Y float64
}

// Shape is an open or closed polyline. Dashed shapes are drawn with a dash
// pattern, everything else solid.
type Shape struct {
	Name   string
	Points []Point
	Dashed bool
}

// arcStepDegrees controls how finely arcs are sampled.
const arcStepDegrees = 2.0

// Lines returns the half-court markings. When outerLines is true the half
// court boundary is included.
func Lines(outerLines bool) []Shape {
	shapes := []Shape{
		circle("hoop", 0, 0, 7.5),
		rect("backboard", -30, -7.5, 60, -1),
		rect("outer_box", -80, -47.5, 160, 190),
		rect("inner_box", -60, -47.5, 120, 190),
		arc("free_throw_top", 0, 142.5, 60, 0, 180),
		dashed(arc("free_throw_bottom", 0, 142.5, 60, 180, 360)),
		arc("restricted", 0, 0, 40, 0, 180),
		line("corner_three_left", -220, -47.5, -220, 92.5),
		line("corner_three_right", 220, -47.5, 220, 92.5),
		arc("three_point_arc", 0, 0, 237.5, 22, 158),
		arc("center_outer_arc", 0, 422.5, 60, 180, 360),
		arc("center_inner_arc", 0, 422.5, 20, 180, 360),
	}
	if outerLines {
		shapes = append(shapes, rect("outer_lines", -250, -47.5, 500, 470))
	}
	return shapes
}

func arc(name string, cx, cy, r, fromDeg, toDeg float64) Shape {
	steps := int(math.Ceil((toDeg - fromDeg) / arcStepDegrees))
	if steps < 1 {
		steps = 1
	}
	points := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		deg := fromDeg + (toDeg-fromDeg)*float64(i)/float64(steps)
		rad := deg * math.Pi / 180
		points = append(points, Point{X: cx + r*math.Cos(rad), Y: cy + r*math.Sin(rad)})
	}
	return Shape{Name: name, Points: points}
}

func circle(name string, cx, cy, r float64) Shape {
	return arc(name, cx, cy, r, 0, 360)
}

// rect closes the rectangle anchored at corner (x, y); a negative height
// extends downwards.
func rect(name string, x, y, w, h float64) Shape {
	return Shape{
		Name: name,
		Points: []Point{
			{X: x, Y: y},
			{X: x + w, Y: y},
			{X: x + w, Y: y + h},
			{X: x, Y: y + h},
			{X: x, Y: y},
		},
	}
}

func line(name string, x1, y1, x2, y2 float64) Shape {
	return Shape{Name: name, Points: []Point{{X: x1, Y: y1}, {X: x2, Y: y2}}}
}

func dashed(s Shape) Shape {
	s.Dashed = true
	return s
}
