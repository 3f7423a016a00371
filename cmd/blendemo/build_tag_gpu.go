//go:build !cputext

package main

import "image"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/inpututil"

// The composite only changes on reloads, so it's drawn once into an
// offscreen canvas and the canvas is presented on every frame.
type game struct {
	demo *demo
	canvas *ebiten.Image
	dirty bool
	screenshotTaken bool
	err error
}

func (self *game) Update() error {
	if self.err != nil { return self.err }
	if self.screenshotTaken { return ebiten.Termination }
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		logger.Info("escape pressed, closing")
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		err := self.demo.reload()
		if err != nil {
			logger.Warningf("reload failed, keeping previous textures: %s", err)
		} else {
			self.dirty = true
		}
	}
	return nil
}

func (self *game) Draw(screen *ebiten.Image) {
	if self.err != nil { return }
	if self.dirty {
		self.err = self.demo.compose(self.canvas)
		if self.err != nil { return }
		self.dirty = false
	}
	screen.DrawImage(self.canvas, nil)

	filename := self.demo.config.Screenshot
	if filename != "" && !self.screenshotTaken {
		self.screenshotTaken = true
		rgba := image.NewRGBA(self.canvas.Bounds())
		self.canvas.ReadPixels(rgba.Pix)
		self.err = writePNG(filename, rgba)
		if self.err == nil {
			logger.Noticef("composite written to %s", filename)
		}
	}
}

func (self *game) Layout(_, _ int) (int, int) {
	return self.demo.config.Width, self.demo.config.Height
}

// Opens the window and polls events until it's closed.
func runDemo(demo *demo) error {
	cfg := demo.config
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS())

	canvas := ebiten.NewImage(cfg.Width, cfg.Height)
	defer canvas.Deallocate()

	logger.Infof("window %dx%d (scale %d), polling at %d ticks per second", cfg.Width, cfg.Height, cfg.Scale, cfg.TPS())
	return ebiten.RunGame(&game{ demo: demo, canvas: canvas, dirty: true })
}
