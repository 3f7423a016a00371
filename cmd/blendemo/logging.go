package main

import "github.com/tinne26/blendemo/log"

import "github.com/urfave/cli"

var logger = log.New("blendemo")

func setupLogging(ctx *cli.Context) {
	log.SetLevel(log.FlagLevel(ctx.GlobalBool("v"), ctx.GlobalBool("vv")))
}
