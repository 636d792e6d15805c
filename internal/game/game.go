package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/swap-tracking/internal/engine"
)

// StatusLine is the single line of text shown to the participant.
type StatusLine struct {
	text string
}

func (s *StatusLine) SetStatus(text string) { s.text = text }

func (s *StatusLine) String() string { return s.text }

type Options struct {
	Width, Height int
	Background    color.Color
	Debug         bool
}

// Game adapts a session to the ebiten game loop: one Update is one tick of
// the session, one Draw renders the token set.
type Game struct {
	session *engine.Session
	status  *StatusLine
	surface *screenSurface
	opts    Options

	keys    []rune
	elapsed time.Duration
}

func New(session *engine.Session, status *StatusLine, opts Options) *Game {
	return &Game{
		session: session,
		status:  status,
		surface: &screenSurface{background: opts.Background},
		opts:    opts,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.keys = ebiten.AppendInputChars(g.keys[:0])
	g.step(time.Second/time.Duration(ebiten.TPS()), g.keys)
	return nil
}

// step advances the session by one tick of length dt with the characters
// typed during it. The clock stops once the session has finished.
func (g *Game) step(dt time.Duration, keys []rune) {
	if !g.session.Finished() {
		g.elapsed += dt
	}
	g.session.Update(dt, keys)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.target = screen
	g.session.Render(g.surface)

	ebitenutil.DebugPrintAt(screen, g.status.String(), 12, 12)

	if g.opts.Debug {
		g.drawOverlay(screen)
	}
}

// drawOverlay shows experimenter-only details: elapsed time, the active
// phase and a session progress bar.
func (g *Game) drawOverlay(screen *ebiten.Image) {
	barHeight := 10
	barY := g.opts.Height - barHeight - 20
	barWidth := g.opts.Width - 40
	barX := 20

	progress := 0.0
	if g.session.Total() > 0 {
		progress = clamp01(float64(g.session.Completed()) / float64(g.session.Total()))
	}

	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth), float32(barHeight), color.RGBA{R: 25, G: 30, B: 40, A: 200}, false)
	if progress > 0 {
		vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(progress*float64(barWidth)), float32(barHeight), color.RGBA{R: 90, G: 160, B: 220, A: 220}, false)
	}
	vector.StrokeRect(screen, float32(barX), float32(barY), float32(barWidth), float32(barHeight), 1, color.RGBA{R: 70, G: 80, B: 100, A: 255}, false)

	info := fmt.Sprintf("%s  trial %d/%d  %s  %.0f TPS",
		formatDuration(g.elapsed), g.session.Trial(), g.session.Total(), g.session.Phase(), ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, info, barX, barY-18)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width, g.opts.Height
}
