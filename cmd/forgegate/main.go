/*
 * Copyright © 2020-2021 ForgeGate contributors.
 *
 * This file is part of ForgeGate.
 *
 * ForgeGate is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License, included
 * in the LICENSE file in this source code package.
 */

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/writeas/web-core/log"

	"github.com/forgegate/forgegate"
)

func main() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Printf("%s\n", c.App.Version)
	}
	app := &cli.App{
		Name:    "ForgeGate",
		Usage:   "A stateless GitHub OAuth and IndieAuth broker",
		Version: forgegate.FormatVersion(),
		Action:  serveAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "c",
				Value: "config.ini",
				Usage: "Load configuration from `FILE`",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Value: false,
				Usage: "Enables debug logging",
			},
		},
	}

	app.Commands = []*cli.Command{
		&cmdConfig,
		&cmdServe,
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
