package engine

import "math"

// Point is a position on the drawing surface, in pixels.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mid returns the midpoint between p and q.
func (p Point) Mid(q Point) Point { return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2} }

// rotate turns p around the origin by angle radians.
func rotate(p Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.Y*cos + p.X*sin,
	}
}

// SwapPath samples the far half of an ellipse whose major axis joins from
// and to. The semi-minor axis is ratio times the semi-major axis. Point i
// sits at parameter t = π - π(i+1)/steps, so the last point is exactly to
// and the first is one step away from from.
//
// Calling it again with the endpoints reversed yields the opposite arc, so
// two swapping tokens pass each other instead of colliding.
func SwapPath(from, to Point, steps int, ratio float64) []Point {
	if steps <= 0 {
		return nil
	}
	diff := to.Sub(from)
	a := math.Hypot(diff.X, diff.Y) / 2
	b := a * ratio
	angle := math.Atan2(diff.Y, diff.X)
	center := from.Mid(to)

	points := make([]Point, steps)
	for i := range points {
		t := math.Pi - math.Pi*float64(i+1)/float64(steps)
		rel := rotate(Point{a * math.Cos(t), b * math.Sin(t)}, angle)
		points[i] = center.Add(rel)
	}
	return points
}

// PolygonLayout places n slots on a regular polygon with unit side, first
// vertex pointing up and the rest running counter-clockwise on screen. The
// polygon is scaled by spacing*height and its bounding box is centered on
// the surface.
func PolygonLayout(n int, width, height, spacing float64) []Point {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Point{{width / 2, height / 2}}
	}

	circumradius := 0.5 / math.Sin(math.Pi/float64(n))
	rel := make([]Point, n)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for k := range rel {
		angle := -math.Pi/2 - 2*math.Pi*float64(k)/float64(n)
		rel[k] = Point{circumradius * math.Cos(angle), circumradius * math.Sin(angle)}
		minY = math.Min(minY, rel[k].Y)
		maxY = math.Max(maxY, rel[k].Y)
	}

	scale := height * spacing
	shift := -(minY + maxY) / 2
	out := make([]Point, n)
	for k, p := range rel {
		out[k] = Point{
			X: p.X*scale + width/2,
			Y: (p.Y+shift)*scale + height/2,
		}
	}
	return out
}
