package main

import "os"
import "fmt"
import "image"
import "image/png"

import "github.com/tinne26/blendemo"
import "github.com/tinne26/blendemo/core"
import "github.com/tinne26/blendemo/config"
import "github.com/tinne26/blendemo/texture"

// The demo state shared by the window and the headless modes.
type demo struct {
	config config.Config
	loader *texture.Loader
	compositor *blendemo.Compositor
	scene blendemo.Scene
}

func newDemo(cfg config.Config) (*demo, error) {
	modes, err := cfg.BlendModes()
	if err != nil { return nil, err }
	return &demo{
		config: cfg,
		loader: texture.NewLoader(nil),
		compositor: blendemo.NewCompositor(),
		scene: blendemo.Scene{ Layout: cfg.Layout(), Modes: modes },
	}, nil
}

// Loads both textures. On failure, textures loaded so far stay with
// the loader and are released by Close().
func (self *demo) loadTextures() error {
	bg, err := self.loadTexture(self.config.Background)
	if err != nil { return err }
	self.scene.Background = bg
	fg, err := self.loadTexture(self.config.Foreground)
	if err != nil { return err }
	self.scene.Foreground = fg
	return nil
}

// Loads both textures again. The scene is only updated if both
// loads succeed. Replaced textures are handed back to the loader,
// which releases them once they are no longer cached.
func (self *demo) reload() error {
	bg, err := self.loadTexture(self.config.Background)
	if err != nil { return err }
	fg, err := self.loadTexture(self.config.Foreground)
	if err != nil {
		self.loader.Drop(bg)
		return err
	}

	prevBg, prevFg := self.scene.Background, self.scene.Foreground
	self.scene.Background, self.scene.Foreground = bg, fg
	self.loader.Drop(prevBg)
	self.loader.Drop(prevFg)

	hits, misses := self.loader.Stats()
	logger.Infof("textures reloaded (cache hits %d, misses %d, live textures %d)", hits, misses, self.loader.Live())
	return nil
}

func (self *demo) loadTexture(name string) (core.Texture, error) {
	tex, err := self.loader.Load(name)
	if err != nil { return nil, err }
	bounds := tex.Bounds()
	logger.Debugf("loaded %s (%dx%d)", name, bounds.Dx(), bounds.Dy())
	return tex, nil
}

func (self *demo) compose(target core.Target) error {
	err := self.compositor.DrawScene(target, &self.scene)
	if err != nil { return fmt.Errorf("failed to compose scene: %w", err) }
	return nil
}

// Releases every texture the demo loaded, including the ones still
// in the texture cache. Safe to call with partially loaded scenes.
func (self *demo) Close() {
	self.loader.Close()
	self.scene.Background = nil
	self.scene.Foreground = nil
}

// Creates the demo, loads the textures and runs it in the mode
// available for the current build. Resources are released on every
// exit path.
func runConfig(cfg config.Config) error {
	demo, err := newDemo(cfg)
	if err != nil { return err }
	defer demo.Close()

	err = demo.loadTextures()
	if err != nil { return err }
	return runDemo(demo)
}

func writePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil { return fmt.Errorf("failed to create %s: %w", filename, err) }
	err = png.Encode(file, img)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	return file.Close()
}
