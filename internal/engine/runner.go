package engine

import (
	"fmt"
	"time"

	"github.com/iburimskiy/swap-tracking/internal/trial"
)

// Options holds the pacing of a session.
type Options struct {
	Steps              int
	EllipseRatio       float64
	HideSettle         time.Duration
	SwapSettle         time.Duration
	GuessHold          time.Duration
	StartKey           rune
	ResetBetweenTrials bool
}

// Status receives the single line of participant-facing text.
type Status interface {
	SetStatus(text string)
}

// GuessHandler is called once per trial when the participant is asked for
// their guess. Capturing the answer is left to the implementation.
type GuessHandler interface {
	Guess(number int, t trial.Trial, tokens *TokenSet)
}

type GuessFunc func(number int, t trial.Trial, tokens *TokenSet)

func (f GuessFunc) Guess(number int, t trial.Trial, tokens *TokenSet) { f(number, t, tokens) }

type Cue int

const (
	CueTrialStart Cue = iota
	CueGuess
	CueFinished
)

func (c Cue) String() string {
	switch c {
	case CueTrialStart:
		return "trial_start"
	case CueGuess:
		return "guess"
	case CueFinished:
		return "finished"
	}
	return "unknown"
}

// CuePlayer plays a short signal at fixed points of a session.
type CuePlayer interface {
	Play(c Cue)
}

type nopStatus struct{}

func (nopStatus) SetStatus(string) {}

type nopCues struct{}

func (nopCues) Play(Cue) {}

type Phase int

const (
	PhaseWaitingToStart Phase = iota
	PhaseHiding
	PhaseSwapping
	PhasePromptingGuess
	PhaseRevealing
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseWaitingToStart:
		return "waiting_to_start"
	case PhaseHiding:
		return "hiding"
	case PhaseSwapping:
		return "swapping"
	case PhasePromptingGuess:
		return "prompting_guess"
	case PhaseRevealing:
		return "revealing"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// TrialRunner steps one trial through its phases. It never blocks: every
// wait is state that Update checks once per tick.
type TrialRunner struct {
	number int
	trial  trial.Trial
	set    *TokenSet
	opts   Options
	status Status
	guess  GuessHandler
	cues   CuePlayer

	phase     Phase
	swapIndex int
	swap      *SwapAnimation
	wait      time.Duration
}

func newTrialRunner(number int, t trial.Trial, set *TokenSet, opts Options, status Status, guess GuessHandler, cues CuePlayer) *TrialRunner {
	return &TrialRunner{
		number: number,
		trial:  t,
		set:    set,
		opts:   opts,
		status: status,
		guess:  guess,
		cues:   cues,
	}
}

func (r *TrialRunner) Phase() Phase { return r.phase }

func (r *TrialRunner) Done() bool { return r.phase == PhaseDone }

// SwapIndex is the 0-based index of the swap being animated or settled.
func (r *TrialRunner) SwapIndex() int { return r.swapIndex }

// Update advances the trial by one tick lasting dt; keys are the runes
// typed during that tick.
func (r *TrialRunner) Update(dt time.Duration, keys []rune) {
	switch r.phase {
	case PhaseWaitingToStart:
		if !containsRune(keys, r.opts.StartKey) {
			return
		}
		r.status.SetStatus(fmt.Sprintf("Trial %d", r.number))
		r.cues.Play(CueTrialStart)
		r.set.HideAll()
		r.wait = r.opts.HideSettle
		r.phase = PhaseHiding

	case PhaseHiding:
		if !r.settle(dt) {
			return
		}
		r.swapIndex = 0
		r.startSwapOrPrompt()

	case PhaseSwapping:
		if r.swap != nil {
			if r.swap.Step() {
				r.swap = nil
				r.wait = r.opts.SwapSettle
			}
			return
		}
		if !r.settle(dt) {
			return
		}
		r.swapIndex++
		r.startSwapOrPrompt()

	case PhasePromptingGuess:
		if !r.settle(dt) {
			return
		}
		r.set.UnhideAll()
		r.phase = PhaseRevealing

	case PhaseRevealing:
		r.phase = PhaseDone
	}
}

func (r *TrialRunner) startSwapOrPrompt() {
	if r.swapIndex < len(r.trial.Swaps) {
		r.swap = NewSwapAnimation(r.set, r.trial.Swaps[r.swapIndex], r.opts.Steps, r.opts.EllipseRatio)
		r.phase = PhaseSwapping
		return
	}
	r.status.SetStatus(fmt.Sprintf("Trial %d: Make Guess", r.number))
	r.cues.Play(CueGuess)
	r.guess.Guess(r.number, r.trial, r.set)
	r.wait = r.opts.GuessHold
	r.phase = PhasePromptingGuess
}

func (r *TrialRunner) settle(dt time.Duration) bool {
	r.wait -= dt
	return r.wait <= 0
}

func containsRune(keys []rune, want rune) bool {
	for _, k := range keys {
		if k == want {
			return true
		}
	}
	return false
}
