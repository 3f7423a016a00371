package core

import "strconv"

// The blend mode specifies how the pixels of a texture are combined
// with the pixels already present on the target. Colors below are
// expressed with straight (non-premultiplied) alpha:
//  - BlendNone: dstRGBA = srcRGBA.
//  - BlendAlpha: dstRGB = srcRGB*srcA + dstRGB*(1 - srcA), dstA = srcA + dstA*(1 - srcA).
//  - BlendAdd: dstRGB = srcRGB*srcA + dstRGB, dstA = dstA.
//  - BlendMod: dstRGB = srcRGB*dstRGB, dstA = dstA.
type BlendMode uint8

const (
	BlendNone  BlendMode = 0 // texture replaces target (transparent pixels included!)
	BlendAlpha BlendMode = 1 // texture drawn over target (default mode)
	BlendAdd   BlendMode = 2 // add colors weighted by source alpha (black adds nothing)
	BlendMod   BlendMode = 3 // multiply colors (white keeps target, black clears it)
)

// Reports whether the blend mode is one of the known modes.
func (self BlendMode) Valid() bool {
	return self <= BlendMod
}

// Returns a textual representation of the blend mode.
func (self BlendMode) String() string {
	switch self {
	case BlendNone: return "BlendNone"
	case BlendAlpha: return "BlendAlpha"
	case BlendAdd: return "BlendAdd"
	case BlendMod: return "BlendMod"
	default:
		return "BlendModeInvalid#" + strconv.Itoa(int(self))
	}
}
