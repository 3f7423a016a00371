//go:build !cputext

package texture

import "image"

import "github.com/tinne26/blendemo/core"
import "github.com/hajimehoshi/ebiten/v2"

// Converts a decoded image to a texture, uploading it to the GPU.
func FromImage(img image.Image) core.Texture {
	if img == nil { panic("can't create texture from nil image") }
	opts := ebiten.NewImageFromImageOptions{ PreserveBounds: true }
	return ebiten.NewImageFromImageWithOptions(img, &opts)
}

// Releases the GPU memory held by the texture. The texture can't be
// used afterwards. Nil textures are ignored.
func Release(texture core.Texture) {
	if texture == nil { return }
	texture.Deallocate()
}
