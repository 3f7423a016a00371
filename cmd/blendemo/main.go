package main

import "os"

import "github.com/urfave/cli"

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "blendemo"
	app.Usage = "composite a background and four foreground strips with different blend modes"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "optional TOML configuration file",
		},
		cli.StringFlag{
			Name:  "bg",
			Usage: "background image file",
		},
		cli.StringFlag{
			Name:  "fg",
			Usage: "foreground image file, drawn once per blend mode",
		},
		cli.StringFlag{
			Name:  "title",
			Usage: "window title",
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "window scale factor over the logical size",
		},
		cli.StringFlag{
			Name:  "out, o",
			Usage: "write the composite to this PNG file and exit",
		},
	}
	app.Action = Run
	app.Commands = []cli.Command{
		{
			Name:   "modes",
			Usage:  "list the available blend modes and their per-pixel formulas",
			Action: ListModes,
		},
		{
			Name:   "layout",
			Usage:  "print the strip rectangles for the current configuration",
			Action: PrintLayout,
		},
	}
	return app
}
