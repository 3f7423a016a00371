//go:build cputext

package internal

import "image"

import "github.com/tinne26/blendemo/core"

const constTextureSizeFactor = 56

// Without Ebitengine, textures are plain images. For the common
// image types the returned size is exact, for the rest the bounds
// are used assuming 4 bytes per pixel.
func textureByteSize(texture core.Texture) uint32 {
	if texture == nil { return constTextureSizeFactor }
	switch img := texture.(type) {
	case *image.RGBA : return uint32(len(img.Pix)) + constTextureSizeFactor
	case *image.NRGBA: return uint32(len(img.Pix)) + constTextureSizeFactor
	case *image.Gray : return uint32(len(img.Pix)) + constTextureSizeFactor
	case *image.Alpha: return uint32(len(img.Pix)) + constTextureSizeFactor
	}
	bounds := texture.Bounds()
	return textureDimsByteSize(bounds.Dx(), bounds.Dy())
}

func textureDimsByteSize(width, height int) uint32 {
	return uint32(width*height)*4 + constTextureSizeFactor
}
