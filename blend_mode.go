package blendemo

import "fmt"
import "strings"

import "github.com/tinne26/blendemo/core"

// Note: the modes mirror the four classic SDL2 texture blend modes.
// Good reference: https://wiki.libsdl.org/SDL2/SDL_BlendMode

const (
	BlendNone  core.BlendMode = core.BlendNone  // texture replaces target (transparent pixels included!)
	BlendAlpha core.BlendMode = core.BlendAlpha // texture drawn over target (default mode)
	BlendAdd   core.BlendMode = core.BlendAdd   // add colors weighted by source alpha
	BlendMod   core.BlendMode = core.BlendMod   // multiply colors, target alpha kept
)

var blendModeNames = [...]string{"none", "blend", "add", "mod"}
var blendModeFormulas = [...]string{
	"dstRGBA = srcRGBA",
	"dstRGB = srcRGB*srcA + dstRGB*(1-srcA), dstA = srcA + dstA*(1-srcA)",
	"dstRGB = srcRGB*srcA + dstRGB, dstA = dstA",
	"dstRGB = srcRGB*dstRGB, dstA = dstA",
}

// Returns all the blend modes, in the order they are drawn by default.
func BlendModes() []core.BlendMode {
	return []core.BlendMode{BlendNone, BlendAlpha, BlendAdd, BlendMod}
}

// Returns the short lowercase name of the blend mode, as accepted by
// [ParseBlendMode](). Invalid modes panic.
func BlendModeName(mode core.BlendMode) string {
	if !mode.Valid() { panic(preViolation + ": invalid blend mode " + mode.String()) }
	return blendModeNames[mode]
}

// Returns a short textual description of the per-pixel operation
// applied by the blend mode. Invalid modes panic.
func BlendModeFormula(mode core.BlendMode) string {
	if !mode.Valid() { panic(preViolation + ": invalid blend mode " + mode.String()) }
	return blendModeFormulas[mode]
}

// Parses a blend mode name. Besides the short names returned by
// [BlendModeName](), a few common aliases are accepted: "replace",
// "alpha", "additive" and "modulate". Case is ignored.
func ParseBlendMode(name string) (core.BlendMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "replace": return BlendNone, nil
	case "blend", "alpha": return BlendAlpha, nil
	case "add", "additive": return BlendAdd, nil
	case "mod", "modulate": return BlendMod, nil
	default:
		return BlendNone, fmt.Errorf("unknown blend mode '%s'", name)
	}
}
