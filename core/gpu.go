//go:build !cputext

package core

import "github.com/hajimehoshi/ebiten/v2"

// Alias to allow compiling the package without Ebitengine (-tags cputext).
// 
// Without Ebitengine, [Target] defaults to [image/draw.Image].
type Target = *ebiten.Image

// A Texture is the source image for a composite operation. With
// Ebitengine, textures live on the GPU and can only be read back
// while the game loop is running.
// 
// Without Ebitengine, [Texture] defaults to [image.Image], and
// composition is done on the CPU by the mix package.
type Texture = *ebiten.Image
