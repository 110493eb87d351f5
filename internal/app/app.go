//go:build ebiten

package app

import (
	"image"
	"log/slog"
	"time"

	"relief/internal/core"
	"relief/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the parameter panel right of the map.
const HUDWidth = 240

// Game adapts a terrain surface to the ebiten.Game interface.
type Game struct {
	surface core.Surface
	log     *slog.Logger
	overlay *ui.Overlay
	hud     *ui.HUD

	texture  *ebiten.Image
	uploaded *image.RGBA

	scale int
	seed  int64
	seeds *core.RNG
}

// New constructs a Game for the provided surface. The surface must already
// hold a render.
func New(surface core.Surface, scale int, seed int64, log *slog.Logger) *Game {
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		surface: surface,
		log:     log,
		overlay: ui.NewOverlay(surface, scale),
		hud:     ui.NewHUD(surface, HUDWidth),
		scale:   scale,
		seed:    seed,
		seeds:   core.NewRNG(time.Now().UnixNano()),
	}
}

// Reset regenerates the surface with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	if err := g.surface.Reset(seed); err != nil {
		g.log.Error("regenerate", "seed", seed, "error", err)
	}
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(NextSeed(g.seeds))
	}
	g.overlay.Update()
	g.hud.Update(g.mapWidth())
	return nil
}

// Draw uploads the latest render when it changed and paints it scaled.
func (g *Game) Draw(screen *ebiten.Image) {
	img := g.surface.Image()
	if img == nil {
		return
	}
	if g.texture == nil || g.texture.Bounds().Size() != img.Bounds().Size() {
		g.texture = ebiten.NewImage(img.Bounds().Dx(), img.Bounds().Dy())
		g.uploaded = nil
	}
	if img != g.uploaded {
		g.texture.WritePixels(img.Pix)
		g.uploaded = img
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.texture, op)

	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.mapWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.surface.Size()
	return g.mapWidth() + HUDWidth, s.H * g.scale
}

func (g *Game) mapWidth() int {
	return g.surface.Size().W * g.scale
}
