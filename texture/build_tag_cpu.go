//go:build cputext

package texture

import "image"
import "image/draw"

import "github.com/tinne26/blendemo/core"

// Converts a decoded image to a texture. Without Ebitengine, RGBA and
// NRGBA images are used as they are, and the rest are converted to NRGBA.
func FromImage(img image.Image) core.Texture {
	if img == nil { panic("can't create texture from nil image") }
	switch img.(type) {
	case *image.RGBA, *image.NRGBA:
		return img
	default:
		bounds := img.Bounds()
		nrgba := image.NewNRGBA(bounds)
		draw.Draw(nrgba, bounds, img, bounds.Min, draw.Src)
		return nrgba
	}
}

// Releases the texture resources. Without Ebitengine this is a no-op,
// memory is reclaimed by the garbage collector.
func Release(texture core.Texture) {}
