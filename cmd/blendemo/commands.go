package main

import "fmt"

import "github.com/tinne26/blendemo"
import "github.com/tinne26/blendemo/config"

import "github.com/urfave/cli"

// Run the demo: a window by default, or a PNG file with --out.
func Run(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil { return err }
	return runConfig(cfg)
}

// List the known blend modes.
func ListModes(ctx *cli.Context) error {
	for _, mode := range blendemo.BlendModes() {
		fmt.Fprintf(ctx.App.Writer, "%-6s %s\n", blendemo.BlendModeName(mode), blendemo.BlendModeFormula(mode))
	}
	return nil
}

// Print the layout and the strip rectangles.
func PrintLayout(ctx *cli.Context) error {
	setupLogging(ctx)
	cfg, err := loadConfig(ctx)
	if err != nil { return err }

	layout := cfg.Layout()
	modes, _ := cfg.BlendModes() // validated on load
	fmt.Fprintf(ctx.App.Writer, "logical size %dx%d, row height %d\n", layout.Width, layout.Height, layout.RowHeight())
	for row, mode := range modes {
		fmt.Fprintf(ctx.App.Writer, "strip %d %-6s %v\n", row, blendemo.BlendModeName(mode), layout.StripRect(row))
	}
	return nil
}

// Loads the configuration file, if any, and applies flag overrides.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if filename := ctx.GlobalString("config"); filename != "" {
		var err error
		cfg, err = config.Load(filename)
		if err != nil { return cfg, err }
		logger.Infof("loaded config from %s", filename)
	}

	if ctx.GlobalIsSet("bg") { cfg.Background = ctx.GlobalString("bg") }
	if ctx.GlobalIsSet("fg") { cfg.Foreground = ctx.GlobalString("fg") }
	if ctx.GlobalIsSet("title") { cfg.Title = ctx.GlobalString("title") }
	if ctx.GlobalIsSet("scale") { cfg.Scale = ctx.GlobalInt("scale") }
	if ctx.GlobalIsSet("out") { cfg.Screenshot = ctx.GlobalString("out") }
	return cfg, cfg.Validate()
}
