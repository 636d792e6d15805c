package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/swap-tracking/internal/engine"
	"github.com/iburimskiy/swap-tracking/internal/trial"
)

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Swap Tracking - press the start key to begin each trial, Esc: Quit"

	// Token appearance
	CircleRadius = 50
	CoverScale   = 2.0
	SpacingRatio = 0.7

	// Swap motion; a swap takes BaseSwapSteps/Speed frames
	BaseSwapSteps = 100
	Speed         = 1.0
	EllipseRatio  = 0.4

	// Settle pauses
	HideSettle = 1000 * time.Millisecond
	SwapSettle = 400 * time.Millisecond
	GuessHold  = 2000 * time.Millisecond

	StartKey = "s"
)

var (
	DefaultColors     = []string{"red", "green", "blue"}
	DefaultCover      = "grey"
	DefaultBackground = "#14141c"
)

var ErrInvalidConfig = errors.New("invalid config")

type Experiment struct {
	Window  Window          `yaml:"window"`
	Tokens  Tokens          `yaml:"tokens"`
	Motion  Motion          `yaml:"motion"`
	Timing  Timing          `yaml:"timing"`
	Input   Input           `yaml:"input"`
	Trials  []trial.Trial   `yaml:"trials"`
	Session trial.Selection `yaml:"session,flow"`
}

type Window struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Background string `yaml:"background"`
}

type Tokens struct {
	Radius     float64  `yaml:"radius"`
	Colors     []string `yaml:"colors,flow"`
	CoverColor string   `yaml:"cover_color"`
	CoverScale float64  `yaml:"cover_scale"`
	Spacing    float64  `yaml:"spacing"`
}

type Motion struct {
	Speed        float64 `yaml:"speed"`
	EllipseRatio float64 `yaml:"ellipse_ratio"`
}

type Timing struct {
	HideSettle         time.Duration `yaml:"hide_settle"`
	SwapSettle         time.Duration `yaml:"swap_settle"`
	GuessHold          time.Duration `yaml:"guess_hold"`
	ResetBetweenTrials bool          `yaml:"reset_between_trials"`
}

type Input struct {
	StartKey string `yaml:"start_key"`
}

// Default returns the stock experiment: three tokens, trials 0-3, and a
// session presenting trials 1 and 2.
func Default() *Experiment {
	e := &Experiment{}
	e.applyDefaults()
	return e
}

// Load reads, defaults and validates an experiment file.
func Load(path string) (*Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read experiment file: %w", err)
	}
	e, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return e, nil
}

func Parse(data []byte) (*Experiment, error) {
	var e Experiment
	if err := yaml.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("parse experiment: %w", err)
	}
	e.applyDefaults()
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}

// Save writes e as YAML.
func Save(path string, e *Experiment) error {
	data, err := yaml.Marshal(e)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (e *Experiment) applyDefaults() {
	if e.Window.Width == 0 {
		e.Window.Width = WindowWidth
	}
	if e.Window.Height == 0 {
		e.Window.Height = WindowHeight
	}
	if e.Window.Title == "" {
		e.Window.Title = WindowTitle
	}
	if e.Window.Background == "" {
		e.Window.Background = DefaultBackground
	}
	if e.Tokens.Radius == 0 {
		e.Tokens.Radius = CircleRadius
	}
	if len(e.Tokens.Colors) == 0 {
		e.Tokens.Colors = append([]string(nil), DefaultColors...)
	}
	if e.Tokens.CoverColor == "" {
		e.Tokens.CoverColor = DefaultCover
	}
	if e.Tokens.CoverScale == 0 {
		e.Tokens.CoverScale = CoverScale
	}
	if e.Tokens.Spacing == 0 {
		e.Tokens.Spacing = SpacingRatio
	}
	if e.Motion.Speed == 0 {
		e.Motion.Speed = Speed
	}
	if e.Motion.EllipseRatio == 0 {
		e.Motion.EllipseRatio = EllipseRatio
	}
	if e.Timing.HideSettle == 0 {
		e.Timing.HideSettle = HideSettle
	}
	if e.Timing.SwapSettle == 0 {
		e.Timing.SwapSettle = SwapSettle
	}
	if e.Timing.GuessHold == 0 {
		e.Timing.GuessHold = GuessHold
	}
	if e.Input.StartKey == "" {
		e.Input.StartKey = StartKey
	}
	// the stock selection only makes sense against the stock catalog
	if e.Trials == nil {
		e.Trials = trial.DefaultTrials()
		if e.Session == nil {
			e.Session = trial.DefaultSelection()
		}
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// Validate checks every field and resolves the session against the catalog.
func (e *Experiment) Validate() error {
	if e.Window.Width <= 0 || e.Window.Height <= 0 {
		return invalid("window size %dx%d", e.Window.Width, e.Window.Height)
	}
	if _, err := ParseColor(e.Window.Background); err != nil {
		return invalid("window.background: %v", err)
	}
	for name, v := range map[string]float64{
		"tokens.radius":        e.Tokens.Radius,
		"tokens.cover_scale":   e.Tokens.CoverScale,
		"tokens.spacing":       e.Tokens.Spacing,
		"motion.speed":         e.Motion.Speed,
		"motion.ellipse_ratio": e.Motion.EllipseRatio,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid("%s %v is not a finite number", name, v)
		}
	}
	if e.Tokens.Radius < 0 {
		return invalid("tokens.radius %v is negative", e.Tokens.Radius)
	}
	for i, c := range e.Tokens.Colors {
		if _, err := ParseColor(c); err != nil {
			return invalid("tokens.colors[%d]: %v", i, err)
		}
	}
	if _, err := ParseColor(e.Tokens.CoverColor); err != nil {
		return invalid("tokens.cover_color: %v", err)
	}
	if e.Tokens.CoverScale < 0 || e.Tokens.Spacing < 0 {
		return invalid("tokens.cover_scale and tokens.spacing must not be negative")
	}
	if e.Motion.Speed < 0 || e.Motion.Speed > BaseSwapSteps {
		return invalid("motion.speed %v outside (0, %d]", e.Motion.Speed, BaseSwapSteps)
	}
	if e.Motion.EllipseRatio < 0 {
		return invalid("motion.ellipse_ratio %v is negative", e.Motion.EllipseRatio)
	}
	if e.Timing.HideSettle < 0 || e.Timing.SwapSettle < 0 || e.Timing.GuessHold < 0 {
		return invalid("timing values must not be negative")
	}
	if utf8.RuneCountInString(e.Input.StartKey) != 1 {
		return invalid("input.start_key %q must be a single character", e.Input.StartKey)
	}
	if _, err := e.SessionTrials(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Catalog builds the validated trial catalog for this experiment's token count.
func (e *Experiment) Catalog() (*trial.Catalog, error) {
	return trial.NewCatalog(e.Trials, len(e.Tokens.Colors))
}

// SessionTrials resolves the session selection into trials, in order.
func (e *Experiment) SessionTrials() ([]trial.Trial, error) {
	c, err := e.Catalog()
	if err != nil {
		return nil, err
	}
	return e.Session.Resolve(c)
}

// Steps is the number of frames one swap animation takes.
func (e *Experiment) Steps() int {
	return max(1, int(math.Round(BaseSwapSteps/e.Motion.Speed)))
}

func (e *Experiment) StartRune() rune {
	r, _ := utf8.DecodeRuneInString(e.Input.StartKey)
	return r
}

func (e *Experiment) Options() engine.Options {
	return engine.Options{
		Steps:              e.Steps(),
		EllipseRatio:       e.Motion.EllipseRatio,
		HideSettle:         e.Timing.HideSettle,
		SwapSettle:         e.Timing.SwapSettle,
		GuessHold:          e.Timing.GuessHold,
		StartKey:           e.StartRune(),
		ResetBetweenTrials: e.Timing.ResetBetweenTrials,
	}
}

// Layout converts the token section into an engine layout. Colors must
// already have passed Validate.
func (e *Experiment) Layout() engine.Layout {
	l := engine.Layout{
		Width:      float64(e.Window.Width),
		Height:     float64(e.Window.Height),
		Spacing:    e.Tokens.Spacing,
		Radius:     e.Tokens.Radius,
		CoverColor: MustColor(e.Tokens.CoverColor),
		CoverScale: e.Tokens.CoverScale,
	}
	for _, c := range e.Tokens.Colors {
		l.Colors = append(l.Colors, MustColor(c))
	}
	return l
}
