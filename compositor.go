package blendemo

import "fmt"
import "image"

import "github.com/tinne26/blendemo/core"

// A [Compositor] copies textures onto a target, stretching them to the
// requested rectangle and combining the pixels with the current blend
// mode.
//
// The blend mode is compositor state: set it with [Compositor.SetBlendMode]()
// before each draw that needs a different one. To draw the full demo
// scene at once, see [Compositor.DrawScene]().
type Compositor struct {
	blendMode core.BlendMode
	re renderData
}

// Creates a new [Compositor] with the blend mode set to [BlendAlpha],
// which is the mode textures created from images with an alpha
// channel have by default.
func NewCompositor() *Compositor {
	var compositor Compositor
	compositor.blendMode = BlendAlpha
	return &compositor
}

// Sets the blend mode to be used on subsequent draws. Unknown modes
// return an error and leave the current mode untouched.
func (self *Compositor) SetBlendMode(mode core.BlendMode) error {
	if !mode.Valid() {
		return fmt.Errorf("failed to set blend mode: invalid mode %s", mode.String())
	}
	self.blendMode = mode
	return nil
}

// Returns the current blend mode.
func (self *Compositor) BlendMode() core.BlendMode {
	return self.blendMode
}

// Fills the whole target with opaque black.
func (self *Compositor) Clear(target core.Target) {
	if isNilTarget(target) { panic(preViolation + ": nil target") }
	clearTarget(target)
}

// Copies the whole texture into the given rectangle of the target,
// stretching it as needed. Parts of the rectangle outside the target
// are clipped. Empty rectangles draw nothing.
func (self *Compositor) Draw(target core.Target, texture core.Texture, dst image.Rectangle) error {
	if isNilTarget(target) { return errNilTarget }
	if isNilTexture(texture) { return errNilTexture }
	if dst.Empty() || texture.Bounds().Empty() { return nil }
	self.drawTexture(target, texture, dst)
	return nil
}

// Same as [Compositor.Draw](), but stretching the texture to cover
// the full target bounds.
func (self *Compositor) DrawFull(target core.Target, texture core.Texture) error {
	if isNilTarget(target) { return errNilTarget }
	return self.Draw(target, texture, target.Bounds())
}
