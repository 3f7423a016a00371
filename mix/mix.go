// Package mix implements the blend modes on the CPU. It's always compiled,
// even when Ebitengine is available, so composites can be computed and
// compared without a running game loop.
package mix

import "image"
import "image/draw"
import "image/color"

import "github.com/tinne26/blendemo/core"

const preViolation = "precondition violation"

// A Func combines a source color with the current destination color and
// returns the new destination color. All values are straight alpha RGBA
// in the [0, 1] range.
type Func func(src, dst [4]float32) [4]float32

// Returns the blend function for the given mode. Invalid modes panic.
func FuncFor(mode core.BlendMode) Func {
	switch mode {
	case core.BlendNone : return None
	case core.BlendAlpha: return Alpha
	case core.BlendAdd  : return Add
	case core.BlendMod  : return Mod
	default:
		panic(preViolation + ": invalid blend mode " + mode.String())
	}
}

// Source replaces destination, alpha included.
func None(src, dst [4]float32) [4]float32 {
	return src
}

// Source drawn over destination.
func Alpha(src, dst [4]float32) [4]float32 {
	sa := src[3]
	if sa == 1.0 { return src }
	if sa == 0.0 { return dst }
	oma := 1.0 - sa // one minus alpha
	return [4]float32{
		src[0]*sa + dst[0]*oma,
		src[1]*sa + dst[1]*oma,
		src[2]*sa + dst[2]*oma,
		sa + dst[3]*oma,
	}
}

// Source color weighted by its alpha added to destination. Alpha stays.
func Add(src, dst [4]float32) [4]float32 {
	sa := src[3]
	if sa == 0.0 { return dst }
	return [4]float32{
		min(src[0]*sa + dst[0], 1),
		min(src[1]*sa + dst[1], 1),
		min(src[2]*sa + dst[2], 1),
		dst[3],
	}
}

// Source color multiplied by destination. Alpha stays.
func Mod(src, dst [4]float32) [4]float32 {
	return [4]float32{
		src[0]*dst[0],
		src[1]*dst[1],
		src[2]*dst[2],
		dst[3],
	}
}

// Copy stretches the whole source image into the dst rectangle of the
// target, composing each covered pixel with the given blend mode. Sampling
// is nearest neighbour, taken at pixel centers. Pixels outside the target
// bounds are skipped.
func Copy(target draw.Image, dst image.Rectangle, source image.Image, mode core.BlendMode) {
	blend := FuncFor(mode)
	srcRect := source.Bounds()
	if dst.Empty() || srcRect.Empty() { return }
	clip := dst.Intersect(target.Bounds())
	if clip.Empty() { return }

	dstW, dstH := dst.Dx(), dst.Dy()
	srcW, srcH := srcRect.Dx(), srcRect.Dy()

	// extremely slow and naive approach, but fine at demo sizes
	var prevSrc, prevDst, prevOut [4]float32
	prevValid := false
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		sy := srcRect.Min.Y + ((2*(y - dst.Min.Y) + 1)*srcH)/(2*dstH)
		for x := clip.Min.X; x < clip.Max.X; x++ {
			sx := srcRect.Min.X + ((2*(x - dst.Min.X) + 1)*srcW)/(2*dstW)
			src := ColorToFloat32(source.At(sx, sy))
			cur := ColorToFloat32(target.At(x, y))
			if !prevValid || src != prevSrc || cur != prevDst {
				prevSrc, prevDst = src, cur
				prevOut = blend(src, cur)
				prevValid = true
			}
			target.Set(x, y, Float32ToNRGBA(prevOut))
		}
	}
}

// Fills the given rectangle of the target with an opaque color.
func Fill(target draw.Image, rect image.Rectangle, clr color.Color) {
	draw.Draw(target, rect, image.NewUniform(clr), image.Point{}, draw.Src)
}

// ---- helper functions for color conversions ----

// Converts any color to straight alpha float32 RGBA.
func ColorToFloat32(clr color.Color) [4]float32 {
	nrgba := color.NRGBA64Model.Convert(clr).(color.NRGBA64)
	return [4]float32{
		float32(nrgba.R)/65535.0,
		float32(nrgba.G)/65535.0,
		float32(nrgba.B)/65535.0,
		float32(nrgba.A)/65535.0,
	}
}

// Converts straight alpha float32 RGBA to [color.NRGBA], rounding to
// the nearest value and clamping to the valid range.
func Float32ToNRGBA(rgba [4]float32) color.NRGBA {
	return color.NRGBA{
		R: f32ToUint8(rgba[0]),
		G: f32ToUint8(rgba[1]),
		B: f32ToUint8(rgba[2]),
		A: f32ToUint8(rgba[3]),
	}
}

func f32ToUint8(value float32) uint8 {
	if value <= 0 { return 0 }
	if value >= 1 { return 255 }
	return uint8(value*255.0 + 0.5)
}
