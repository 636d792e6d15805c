package engine

import (
	"image/color"
)

// Surface is the drawing target the token set renders onto.
type Surface interface {
	Clear()
	FillCircle(center Point, radius float64, clr color.Color)
	FillSquare(center Point, side float64, clr color.Color)
}

// Token is one tracked circle.
type Token struct {
	Pos    Point
	Radius float64
	Color  color.Color
	Hidden bool
}

// Layout describes the fixed look of a token set.
type Layout struct {
	Width, Height float64
	Spacing       float64
	Radius        float64
	Colors        []color.Color
	CoverColor    color.Color
	CoverScale    float64
}

// TokenSet owns the tokens and which token currently sits in which slot.
type TokenSet struct {
	tokens     []Token
	home       []Point
	slots      []int
	cover      color.Color
	coverScale float64
}

// NewTokenSet creates one token per layout color, placed on its home slot.
func NewTokenSet(l Layout) *TokenSet {
	n := len(l.Colors)
	s := &TokenSet{
		tokens:     make([]Token, n),
		home:       PolygonLayout(n, l.Width, l.Height, l.Spacing),
		slots:      make([]int, n),
		cover:      l.CoverColor,
		coverScale: l.CoverScale,
	}
	for i := range s.tokens {
		s.tokens[i] = Token{Radius: l.Radius, Color: l.Colors[i]}
	}
	s.Reset()
	return s
}

func (s *TokenSet) Len() int { return len(s.tokens) }

// Token returns a copy of token i.
func (s *TokenSet) Token(i int) Token { return s.tokens[i] }

// Home returns the canonical position of 1-indexed slot.
func (s *TokenSet) Home(slot int) Point { return s.home[slot-1] }

// Reset puts every token back on its own home slot.
func (s *TokenSet) Reset() {
	for i := range s.tokens {
		s.tokens[i].Pos = s.home[i]
		s.slots[i] = i
	}
}

func (s *TokenSet) HideAll() {
	for i := range s.tokens {
		s.tokens[i].Hidden = true
	}
}

func (s *TokenSet) UnhideAll() {
	for i := range s.tokens {
		s.tokens[i].Hidden = false
	}
}

// Move sets token i's position directly; callers supply interpolated points.
func (s *TokenSet) Move(i int, p Point) {
	s.tokens[i].Pos = p
}

// Occupant returns the token index sitting in 1-indexed slot.
func (s *TokenSet) Occupant(slot int) int { return s.slots[slot-1] }

// Arrangement lists the occupant token of every slot, in slot order.
func (s *TokenSet) Arrangement() []int {
	out := make([]int, len(s.slots))
	copy(out, s.slots)
	return out
}

func (s *TokenSet) exchange(slotA, slotB int) {
	s.slots[slotA-1], s.slots[slotB-1] = s.slots[slotB-1], s.slots[slotA-1]
}

// Render clears dst and draws every token: a cover square when hidden, the
// colored circle otherwise.
func (s *TokenSet) Render(dst Surface) {
	dst.Clear()
	for _, t := range s.tokens {
		if t.Hidden {
			dst.FillSquare(t.Pos, t.Radius*s.coverScale, s.cover)
			continue
		}
		dst.FillCircle(t.Pos, t.Radius, t.Color)
	}
}
