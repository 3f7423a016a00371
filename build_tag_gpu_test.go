//go:build !cputext

package blendemo

import "image"
import "testing"

import "github.com/tinne26/blendemo/core"
import "github.com/hajimehoshi/ebiten/v2"

func TestEbitenBlendFactors(t *testing.T) {
	tests := []struct {
		mode core.BlendMode
		want ebiten.Blend
	}{
		{core.BlendNone , ebiten.BlendCopy},
		{core.BlendAlpha, ebiten.BlendSourceOver},
		{core.BlendAdd, ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}},
		{core.BlendMod, ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorZero,
			BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
			BlendFactorDestinationRGB:   ebiten.BlendFactorSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}},
	}

	for _, test := range tests {
		got := ebitenBlend(test.mode)
		if got != test.want {
			t.Fatalf("%s: expected %+v, got %+v", test.mode, test.want, got)
		}
	}

	// additive and modulate must keep the target alpha
	for _, mode := range []core.BlendMode{core.BlendAdd, core.BlendMod} {
		blend := ebitenBlend(mode)
		if blend.BlendFactorSourceAlpha != ebiten.BlendFactorZero || blend.BlendFactorDestinationAlpha != ebiten.BlendFactorOne {
			t.Fatalf("%s: target alpha not preserved", mode)
		}
	}
}

func TestEbitenBlendInvalid(t *testing.T) {
	defer func() {
		if recover() != brokenCode {
			t.Fatal("expected brokenCode panic on invalid blend mode")
		}
	}()
	_ = ebitenBlend(core.BlendMode(4))
}

func TestModShaderCompiles(t *testing.T) {
	shader, err := ebiten.NewShader(modShaderSource)
	if err != nil { t.Fatalf("modulate shader: %v", err) }
	shader.Deallocate()
}

func TestModShaderVertices(t *testing.T) {
	compositor := NewCompositor()
	compositor.setShaderVertices(image.Rect(200, 6, 489, 90), image.Rect(3, 4, 13, 9))
	vertices := compositor.re.shaderVertices
	if vertices[0].DstX != 200 || vertices[0].DstY != 6 || vertices[0].SrcX != 3 || vertices[0].SrcY != 4 {
		t.Fatalf("unexpected top-left vertex %+v", vertices[0])
	}
	if vertices[3].DstX != 489 || vertices[3].DstY != 90 || vertices[3].SrcX != 13 || vertices[3].SrcY != 9 {
		t.Fatalf("unexpected bottom-right vertex %+v", vertices[3])
	}
	if vertices[1].DstX != 489 || vertices[1].DstY != 6 || vertices[2].DstX != 200 || vertices[2].DstY != 90 {
		t.Fatal("unexpected top-right or bottom-left vertex")
	}
	for i, vertex := range vertices {
		if vertex.ColorR != 1 || vertex.ColorG != 1 || vertex.ColorB != 1 || vertex.ColorA != 1 {
			t.Fatalf("vertex %d: expected white vertex color", i)
		}
	}
}
