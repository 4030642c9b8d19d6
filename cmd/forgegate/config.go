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
	"github.com/urfave/cli/v2"

	"github.com/forgegate/forgegate"
)

var (
	cmdConfig cli.Command = cli.Command{
		Name:  "config",
		Usage: "config management tools",
		Subcommands: []*cli.Command{
			&cmdConfigGenerate,
			&cmdConfigInteractive,
		},
	}

	cmdConfigGenerate cli.Command = cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate a basic configuration",
		Action:  genConfigAction,
	}

	cmdConfigInteractive cli.Command = cli.Command{
		Name:   "start",
		Usage:  "Interactive configuration process",
		Action: interactiveConfigAction,
	}
)

func genConfigAction(c *cli.Context) error {
	app := forgegate.NewApp(c.String("c"))
	return forgegate.CreateConfig(app)
}

func interactiveConfigAction(c *cli.Context) error {
	app := forgegate.NewApp(c.String("c"))
	forgegate.DoConfig(app)
	return nil
}
