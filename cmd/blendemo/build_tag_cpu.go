//go:build cputext

package main

import "image"

import "github.com/tinne26/blendemo/core"

const errNoWindow = "window mode unavailable with -tags cputext; rebuild without it or set an output file with --out"

type errMsg string
func (self errMsg) Error() string { return string(self) }

// Without Ebitengine there's no window: the composite is rendered on
// the CPU and written to the configured output file.
func runDemo(demo *demo) error {
	if demo.config.Screenshot == "" { return errMsg(errNoWindow) }

	var target core.Target = image.NewRGBA(demo.config.Layout().Bounds())
	err := demo.compose(target)
	if err != nil { return err }
	err = writePNG(demo.config.Screenshot, target)
	if err != nil { return err }
	logger.Noticef("composite written to %s", demo.config.Screenshot)
	return nil
}
