package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/iburimskiy/swap-tracking/internal/trial"
)

// Option configures a Session.
type Option func(*Session)

func WithStatus(s Status) Option { return func(se *Session) { se.status = s } }

func WithGuessHandler(g GuessHandler) Option { return func(se *Session) { se.guess = g } }

func WithCues(c CuePlayer) Option { return func(se *Session) { se.cues = c } }

// Session runs the selected trials one after another.
type Session struct {
	trials []trial.Trial
	set    *TokenSet
	opts   Options
	status Status
	guess  GuessHandler
	cues   CuePlayer

	index    int
	current  *TrialRunner
	finished bool
}

// NewSession validates trials against the token set and arms the first
// trial. It fails fast on an empty list or a swap naming a missing slot.
func NewSession(trials []trial.Trial, set *TokenSet, opts Options, options ...Option) (*Session, error) {
	if len(trials) == 0 {
		return nil, trial.ErrEmptySelection
	}
	for _, t := range trials {
		if err := t.Validate(set.Len()); err != nil {
			return nil, err
		}
	}
	if opts.Steps <= 0 {
		return nil, fmt.Errorf("swap steps must be positive, got %d", opts.Steps)
	}

	s := &Session{
		trials: trials,
		set:    set,
		opts:   opts,
		status: nopStatus{},
		guess:  GuessFunc(func(int, trial.Trial, *TokenSet) {}),
		cues:   nopCues{},
	}
	for _, o := range options {
		o(s)
	}
	s.arm()
	return s, nil
}

func (s *Session) arm() {
	number := s.index + 1
	s.status.SetStatus(fmt.Sprintf("Trial %d: Press '%c' key to begin trial", number, s.opts.StartKey))
	s.current = newTrialRunner(number, s.trials[s.index], s.set, s.opts, s.status, s.guess, s.cues)
}

// Update advances the active trial by one tick.
func (s *Session) Update(dt time.Duration, keys []rune) {
	if s.finished {
		return
	}
	prev := s.current.Phase()
	s.current.Update(dt, keys)
	if prev == PhaseWaitingToStart && s.current.Phase() != PhaseWaitingToStart {
		log.Printf("[Session] trial %d (id=%d) started", s.index+1, s.trials[s.index].ID)
	}
	if !s.current.Done() {
		return
	}

	log.Printf("[Session] trial %d (id=%d) revealed, arrangement=%v", s.index+1, s.trials[s.index].ID, s.set.Arrangement())
	s.index++
	if s.index == len(s.trials) {
		s.finished = true
		s.current = nil
		s.status.SetStatus("FINISHED!")
		s.cues.Play(CueFinished)
		log.Printf("[Session] finished after %d trials", len(s.trials))
		return
	}
	if s.opts.ResetBetweenTrials {
		s.set.Reset()
	}
	s.arm()
}

// Render draws the current token state onto dst.
func (s *Session) Render(dst Surface) { s.set.Render(dst) }

func (s *Session) Finished() bool { return s.finished }

// Trial returns the 1-based number of the active trial, or the trial count
// once the session has finished.
func (s *Session) Trial() int {
	if s.finished {
		return len(s.trials)
	}
	return s.index + 1
}

func (s *Session) Total() int { return len(s.trials) }

// Phase reports the active trial's phase; PhaseDone once finished.
func (s *Session) Phase() Phase {
	if s.current == nil {
		return PhaseDone
	}
	return s.current.Phase()
}

// Completed is the number of trials that reached their reveal.
func (s *Session) Completed() int { return s.index }
