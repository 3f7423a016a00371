//go:build cputext

package core

import "image"
import "image/draw"

// See documentation on gpu.go instead.
// This is the fallback mode.

type Target = draw.Image

type Texture = image.Image
