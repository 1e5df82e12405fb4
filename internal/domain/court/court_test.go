package court

import (
	"math"
	"testing"
)

func TestLines_OuterLinesToggle(t *testing.T) {
	t.Parallel()

	without := Lines(false)
	with := Lines(true)
	if len(with) != len(without)+1 {
		t.Fatalf("expected outer lines to add one shape, got %d vs %d", len(with), len(without))
	}
	if with[len(with)-1].Name != "outer_lines" {
		t.Fatalf("expected outer_lines last, got=%s", with[len(with)-1].Name)
	}
}

func TestLines_ThreePointArcMeetsCornerLines(t *testing.T) {
	t.Parallel()

	arc := findShape(t, Lines(false), "three_point_arc")
	first := arc.Points[0]
	last := arc.Points[len(arc.Points)-1]

	// 237.5*cos(22deg) ~= 220.2 and 237.5*sin(22deg) ~= 89.0
	if math.Abs(first.X-220.2) > 0.5 || math.Abs(first.Y-89.0) > 0.5 {
		t.Fatalf("unexpected arc start: %+v", first)
	}
	if math.Abs(last.X+220.2) > 0.5 || math.Abs(last.Y-89.0) > 0.5 {
		t.Fatalf("unexpected arc end: %+v", last)
	}
	for _, p := range arc.Points {
		if r := math.Hypot(p.X, p.Y); math.Abs(r-237.5) > 1e-6 {
			t.Fatalf("arc point off radius: %+v r=%v", p, r)
		}
	}
}

func TestLines_OnlyLowerFreeThrowArcIsDashed(t *testing.T) {
	t.Parallel()

	for _, s := range Lines(true) {
		if s.Dashed != (s.Name == "free_throw_bottom") {
			t.Fatalf("unexpected dashed=%v for %s", s.Dashed, s.Name)
		}
	}
}

func TestLines_StayInsidePlotBounds(t *testing.T) {
	t.Parallel()

	for _, s := range Lines(true) {
		for _, p := range s.Points {
			if p.X < MinX-1e-9 || p.X > MaxX+1e-9 || p.Y < MinY-1e-9 || p.Y > MaxY+1e-9 {
				t.Fatalf("%s point outside bounds: %+v", s.Name, p)
			}
		}
	}
}

func findShape(t *testing.T, shapes []Shape, name string) Shape {
	t.Helper()
	for _, s := range shapes {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("shape %s not found", name)
	return Shape{}
}

func TestRect_NegativeHeightExtendsDown(t *testing.T) {
	t.Parallel()

	shape := rect("backboard", -30, -7.5, 60, -1)
	if len(shape.Points) != 5 || shape.Points[0] != shape.Points[4] {
		t.Fatalf("expected a closed rectangle, got %+v", shape.Points)
	}
	if shape.Points[0] != (Point{X: -30, Y: -7.5}) {
		t.Fatalf("rectangle should start at its anchor corner: %+v", shape.Points[0])
	}
	if shape.Points[2] != (Point{X: 30, Y: -8.5}) {
		t.Fatalf("negative height should extend below the anchor: %+v", shape.Points[2])
	}
}
