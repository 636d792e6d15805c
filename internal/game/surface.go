package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/swap-tracking/internal/engine"
)

// screenSurface draws engine primitives onto the frame being rendered.
type screenSurface struct {
	target     *ebiten.Image
	background color.Color
}

func (s *screenSurface) Clear() {
	s.target.Fill(s.background)
}

func (s *screenSurface) FillCircle(c engine.Point, radius float64, clr color.Color) {
	vector.DrawFilledCircle(s.target, float32(c.X), float32(c.Y), float32(radius), clr, true)
}

func (s *screenSurface) FillSquare(c engine.Point, side float64, clr color.Color) {
	half := side / 2
	vector.DrawFilledRect(s.target, float32(c.X-half), float32(c.Y-half), float32(side), float32(side), clr, false)
}
