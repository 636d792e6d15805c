package engine

import (
	"github.com/iburimskiy/swap-tracking/internal/trial"
)

type SwapState int

const (
	SwapIdle SwapState = iota
	SwapAnimating
	SwapComplete
)

func (s SwapState) String() string {
	switch s {
	case SwapIdle:
		return "idle"
	case SwapAnimating:
		return "animating"
	case SwapComplete:
		return "complete"
	}
	return "unknown"
}

// SwapAnimation moves the occupants of two slots along mirrored elliptical
// paths, one path point per Step.
type SwapAnimation struct {
	set          *TokenSet
	slotA, slotB int
	steps        int
	ratio        float64

	tokA, tokB   int
	endA, endB   Point
	pathA, pathB []Point
	frame        int
	state        SwapState
}

func NewSwapAnimation(set *TokenSet, swap trial.Swap, steps int, ratio float64) *SwapAnimation {
	return &SwapAnimation{
		set:   set,
		slotA: swap.A,
		slotB: swap.B,
		steps: steps,
		ratio: ratio,
	}
}

func (a *SwapAnimation) State() SwapState { return a.state }

// Frame is the index of the next path point to apply.
func (a *SwapAnimation) Frame() int { return a.frame }

// Step advances the animation by one display frame and reports whether the
// swap has completed. The first call computes both paths from the current
// token positions.
func (a *SwapAnimation) Step() bool {
	switch a.state {
	case SwapComplete:
		return true
	case SwapIdle:
		a.begin()
	}

	if a.frame >= len(a.pathA) {
		a.finish()
		return true
	}
	a.set.Move(a.tokA, a.pathA[a.frame])
	a.set.Move(a.tokB, a.pathB[a.frame])
	a.frame++
	return false
}

func (a *SwapAnimation) begin() {
	a.tokA = a.set.Occupant(a.slotA)
	a.tokB = a.set.Occupant(a.slotB)
	from := a.set.Token(a.tokA).Pos
	to := a.set.Token(a.tokB).Pos
	a.endA, a.endB = to, from
	a.pathA = SwapPath(from, to, a.steps, a.ratio)
	a.pathB = SwapPath(to, from, a.steps, a.ratio)
	a.frame = 0
	a.state = SwapAnimating
}

func (a *SwapAnimation) finish() {
	// path endpoints carry float error; land exactly on the exchanged spots
	a.set.Move(a.tokA, a.endA)
	a.set.Move(a.tokB, a.endB)
	a.set.exchange(a.slotA, a.slotB)
	a.state = SwapComplete
}
