package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/imdi/gui"
	"github.com/plus3/imdi/imctx"
)

// Game implements ebiten.Game around a Context: every Update is one ImGui
// frame and every Draw paints it.
type Game struct {
	Context *imctx.Context
	Screen  *Screen
	// UI lays out one frame.
	UI func(ui gui.ImGui)
	// Background, when set, draws the scene under the UI.
	Background func(screen *ebiten.Image)
	// QuitKeys ends the game on Escape or Q unless ImGui has keyboard focus.
	QuitKeys bool
}

var _ ebiten.Game = (*Game)(nil)

func (g *Game) Update() error {
	if g.QuitKeys && !g.Context.UI().WantCaptureKeyboard() &&
		(ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ)) {
		return ebiten.Termination
	}
	return g.Context.Frame(func(ui gui.ImGui) {
		if g.UI != nil {
			g.UI(ui)
		}
	})
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.Background != nil {
		g.Background(screen)
	}
	g.Screen.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Screen.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run runs g until the window closes, then disposes the context.
func Run(g *Game) error {
	runErr := ebiten.RunGame(g)
	if err := g.Context.Dispose(); err != nil && runErr == nil {
		return err
	}
	return runErr
}
