package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func dist(p, q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

func TestSwapPath_Endpoints(t *testing.T) {
	homes := PolygonLayout(3, 800, 600, 0.7)
	for i := range homes {
		for j := range homes {
			if i == j {
				continue
			}
			from, to := homes[i], homes[j]
			path := SwapPath(from, to, 100, 0.4)
			require.Len(t, path, 100)

			last := path[len(path)-1]
			assert.InDelta(t, to.X, last.X, 1e-6)
			assert.InDelta(t, to.Y, last.Y, 1e-6)

			// first sample is one step along the arc away from the start
			assert.Less(t, dist(path[0], from), 0.05*dist(from, to))
		}
	}
}

func TestSwapPath_OppositeArcs(t *testing.T) {
	a, b := Point{100, 400}, Point{500, 150}
	ab := SwapPath(a, b, 50, 0.4)
	ba := SwapPath(b, a, 50, 0.4)
	require.Len(t, ba, len(ab))

	mid := a.Mid(b)
	axis := b.Sub(a)
	length := math.Hypot(axis.X, axis.Y)
	ux, uy := axis.X/length, axis.Y/length

	for i := range ab {
		p, q := ab[i].Sub(mid), ba[i].Sub(mid)
		// perpendicular offsets: same size, opposite side of the line
		perpP := p.X*(-uy) + p.Y*ux
		perpQ := q.X*(-uy) + q.Y*ux
		assert.InDelta(t, perpP, -perpQ, eps, "step %d", i)
		// along the line both tokens mirror through the midpoint
		alongP := p.X*ux + p.Y*uy
		alongQ := q.X*ux + q.Y*uy
		assert.InDelta(t, alongP, -alongQ, eps, "step %d", i)
	}

	// strictly off the line in the middle of the swap
	assert.Greater(t, math.Abs(ab[24].Sub(mid).X*(-uy)+ab[24].Sub(mid).Y*ux), 10.0)
}

func TestSwapPath_MinorAxis(t *testing.T) {
	a, b := Point{0, 0}, Point{200, 0}
	path := SwapPath(a, b, 100, 0.4)
	// t = π/2 at i = 49: top of the ellipse, b = 0.4 * 100
	assert.InDelta(t, 100, path[49].X, 1e-9)
	assert.InDelta(t, 40, math.Abs(path[49].Y), 1e-9)
}

func TestSwapPath_Degenerate(t *testing.T) {
	p := Point{42, 17}
	path := SwapPath(p, p, 10, 0.4)
	require.Len(t, path, 10)
	for _, q := range path {
		assert.InDelta(t, p.X, q.X, eps)
		assert.InDelta(t, p.Y, q.Y, eps)
	}

	assert.Nil(t, SwapPath(p, Point{1, 1}, 0, 0.4))
}

func TestPolygonLayout_Triangle(t *testing.T) {
	const w, h, spacing = 800.0, 600.0, 0.7
	vert := math.Sqrt(3) / 2
	rel := []Point{{0, -vert * 2 / 3}, {-0.5, vert / 3}, {0.5, vert / 3}}

	got := PolygonLayout(3, w, h, spacing)
	require.Len(t, got, 3)
	for i, r := range rel {
		wantX := r.X*h*spacing + w/2
		wantY := r.Y*h*spacing + h/2 + vert*spacing*h/6
		assert.InDelta(t, wantX, got[i].X, 1e-9, "slot %d", i+1)
		assert.InDelta(t, wantY, got[i].Y, 1e-9, "slot %d", i+1)
	}

	// equilateral
	side := h * spacing
	assert.InDelta(t, side, dist(got[0], got[1]), 1e-9)
	assert.InDelta(t, side, dist(got[1], got[2]), 1e-9)
	assert.InDelta(t, side, dist(got[2], got[0]), 1e-9)
}

func TestPolygonLayout_Small(t *testing.T) {
	assert.Nil(t, PolygonLayout(0, 800, 600, 0.7))
	assert.Equal(t, []Point{{400, 300}}, PolygonLayout(1, 800, 600, 0.7))

	square := PolygonLayout(4, 800, 600, 0.5)
	require.Len(t, square, 4)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range square {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	assert.InDelta(t, 300, (minY+maxY)/2, 1e-9)
}
