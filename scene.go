package blendemo

import "fmt"

import "github.com/tinne26/blendemo/core"

// A [Scene] gathers everything drawn by [Compositor.DrawScene]().
type Scene struct {
	Layout Layout
	Modes []core.BlendMode // one per strip, drawn top to bottom
	Background core.Texture
	Foreground core.Texture
}

// Returns the default strip modes: none, blend, add, mod.
func DefaultModes() []core.BlendMode {
	return BlendModes()
}

// Draws the whole scene: the target is cleared, the background is
// stretched over the layout area with [BlendAlpha], and then the
// foreground is drawn once per mode, each on its own strip row.
//
// The first failing draw aborts the process and its error is returned.
// The compositor blend mode is restored before returning.
func (self *Compositor) DrawScene(target core.Target, scene *Scene) error {
	if isNilTarget(target) { return errNilTarget }
	if scene == nil { panic(preViolation + ": nil scene") }
	err := scene.Layout.Validate()
	if err != nil { return err }
	if len(scene.Modes) > scene.Layout.Rows {
		return fmt.Errorf("scene has %d modes but only %d rows", len(scene.Modes), scene.Layout.Rows)
	}

	prevMode := self.blendMode
	defer func() { self.blendMode = prevMode }()

	self.Clear(target)
	self.blendMode = BlendAlpha
	err = self.Draw(target, scene.Background, scene.Layout.Bounds())
	if err != nil { return fmt.Errorf("failed to draw background: %w", err) }

	for row, mode := range scene.Modes {
		err = self.SetBlendMode(mode)
		if err != nil { return fmt.Errorf("strip %d: %w", row, err) }
		err = self.Draw(target, scene.Foreground, scene.Layout.StripRect(row))
		if err != nil { return fmt.Errorf("strip %d: failed to draw texture: %w", row, err) }
	}
	return nil
}
