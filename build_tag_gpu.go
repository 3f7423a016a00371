//go:build !cputext

package blendemo

import "image"
import "image/color"

import "github.com/tinne26/blendemo/core"
import "github.com/hajimehoshi/ebiten/v2"

// Ebitengine works with premultiplied alpha, so the factors below are
// the premultiplied equivalents of the straight alpha formulas given
// in [core.BlendMode]. Additive and modulate keep the target alpha.
var (
	blendAdd = ebiten.Blend{
		BlendFactorSourceRGB:        ebiten.BlendFactorOne,
		BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
		BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
		BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
		BlendOperationRGB:           ebiten.BlendOperationAdd,
		BlendOperationAlpha:         ebiten.BlendOperationAdd,
	}
	blendMod = ebiten.Blend{
		BlendFactorSourceRGB:        ebiten.BlendFactorZero,
		BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
		BlendFactorDestinationRGB:   ebiten.BlendFactorSourceColor,
		BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
		BlendOperationRGB:           ebiten.BlendOperationAdd,
		BlendOperationAlpha:         ebiten.BlendOperationAdd,
	}
)

// Modulate multiplies the target by the straight source color, but
// texels reach the blend stage premultiplied. This shader undoes the
// premultiplication before blendMod is applied. Fully transparent
// texels have no color left and multiply the target by black, same
// as mix.Mod.
var modShaderSource []byte = []byte(`
//kage:unit pixels
package main

func Fragment(targetCoords vec4, sourceCoords vec2, color vec4) vec4 {
	texel := imageSrc0UnsafeAt(sourceCoords)
	if texel.a == 0 {
		return vec4(0)
	}
	return vec4(texel.rgb/texel.a, 1)
}
`)

type renderData struct {
	opts ebiten.DrawImageOptions

	modShader *ebiten.Shader
	shaderOptions ebiten.DrawTrianglesShaderOptions
	shaderVertices [4]ebiten.Vertex
}

func ebitenBlend(mode core.BlendMode) ebiten.Blend {
	switch mode {
	case core.BlendNone : return ebiten.BlendCopy
	case core.BlendAlpha: return ebiten.BlendSourceOver
	case core.BlendAdd  : return blendAdd
	case core.BlendMod  : return blendMod
	default:
		panic(brokenCode)
	}
}

func newModShader() *ebiten.Shader {
	shader, err := ebiten.NewShader(modShaderSource)
	if err != nil { panic("Kage shader compilation error:\n" + err.Error()) }
	return shader
}

func clearTarget(target core.Target) {
	target.Fill(color.Black)
}

func (self *Compositor) drawTexture(target core.Target, texture core.Texture, dst image.Rectangle) {
	if self.blendMode == core.BlendMod {
		self.drawModTexture(target, texture, dst)
		return
	}

	srcRect := texture.Bounds()
	sx := float64(dst.Dx())/float64(srcRect.Dx())
	sy := float64(dst.Dy())/float64(srcRect.Dy())

	self.re.opts.GeoM.Reset()
	self.re.opts.GeoM.Translate(-float64(srcRect.Min.X), -float64(srcRect.Min.Y))
	self.re.opts.GeoM.Scale(sx, sy)
	self.re.opts.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	self.re.opts.Blend  = ebitenBlend(self.blendMode)
	self.re.opts.Filter = ebiten.FilterNearest
	target.DrawImage(texture, &self.re.opts)
}

func (self *Compositor) drawModTexture(target core.Target, texture core.Texture, dst image.Rectangle) {
	if self.re.modShader == nil { self.re.modShader = newModShader() }

	// (0 = top-left, 1 = top-right, 2 = bottom-left, 3 = bottom-right)
	srcRect := texture.Bounds()
	self.setShaderVertices(dst, srcRect)
	self.re.shaderOptions.Blend = blendMod
	self.re.shaderOptions.Images[0] = texture
	target.DrawTrianglesShader(self.re.shaderVertices[:], []uint16{0, 1, 2, 2, 1, 3}, self.re.modShader, &self.re.shaderOptions)
	self.re.shaderOptions.Images[0] = nil
}

func (self *Compositor) setShaderVertices(dst, src image.Rectangle) {
	dstMinX, dstMinY := float32(dst.Min.X), float32(dst.Min.Y)
	dstMaxX, dstMaxY := float32(dst.Max.X), float32(dst.Max.Y)
	srcMinX, srcMinY := float32(src.Min.X), float32(src.Min.Y)
	srcMaxX, srcMaxY := float32(src.Max.X), float32(src.Max.Y)
	self.re.shaderVertices[0] = ebiten.Vertex{ DstX: dstMinX, DstY: dstMinY, SrcX: srcMinX, SrcY: srcMinY }
	self.re.shaderVertices[1] = ebiten.Vertex{ DstX: dstMaxX, DstY: dstMinY, SrcX: srcMaxX, SrcY: srcMinY }
	self.re.shaderVertices[2] = ebiten.Vertex{ DstX: dstMinX, DstY: dstMaxY, SrcX: srcMinX, SrcY: srcMaxY }
	self.re.shaderVertices[3] = ebiten.Vertex{ DstX: dstMaxX, DstY: dstMaxY, SrcX: srcMaxX, SrcY: srcMaxY }
	for i := 0; i < 4; i++ {
		self.re.shaderVertices[i].ColorR = 1
		self.re.shaderVertices[i].ColorG = 1
		self.re.shaderVertices[i].ColorB = 1
		self.re.shaderVertices[i].ColorA = 1
	}
}

// typed nil pointers are caught by the plain comparison here
func isNilTexture(texture core.Texture) bool { return texture == nil }
func isNilTarget(target core.Target) bool { return target == nil }
