//go:build cputext

package blendemo

import "image"
import "image/color"

import "github.com/tinne26/blendemo/core"
import "github.com/tinne26/blendemo/mix"

// without Ebitengine, composition is fully delegated to mix
type renderData struct {}

func clearTarget(target core.Target) {
	mix.Fill(target, target.Bounds(), color.Black)
}

func (self *Compositor) drawTexture(target core.Target, texture core.Texture, dst image.Rectangle) {
	mix.Copy(target, dst, texture, self.blendMode)
}

// Typed nil pointers of the standard image types wrapped in the
// interfaces don't compare equal to nil, so they are checked here.
func isNilTexture(texture core.Texture) bool {
	switch img := texture.(type) {
	case nil: return true
	case *image.RGBA    : return img == nil
	case *image.NRGBA   : return img == nil
	case *image.RGBA64  : return img == nil
	case *image.NRGBA64 : return img == nil
	case *image.Gray    : return img == nil
	case *image.Gray16  : return img == nil
	case *image.Alpha   : return img == nil
	case *image.Alpha16 : return img == nil
	case *image.Paletted: return img == nil
	case *image.YCbCr   : return img == nil
	case *image.NYCbCrA : return img == nil
	case *image.CMYK    : return img == nil
	case *image.Uniform : return img == nil
	default:
		return false
	}
}

func isNilTarget(target core.Target) bool { return isNilTexture(target) }
