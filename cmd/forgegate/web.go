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
	"github.com/writeas/web-core/log"

	"github.com/gorilla/mux"
	"github.com/urfave/cli/v2"

	"github.com/forgegate/forgegate"
)

var (
	cmdServe cli.Command = cli.Command{
		Name:    "serve",
		Aliases: []string{"web"},
		Usage:   "Run broker server",
		Action:  serveAction,
	}
)

func serveAction(c *cli.Context) error {
	// Initialize the application
	app := forgegate.NewApp(c.String("c"))
	var err error
	log.Info("Starting %s...", forgegate.FormatVersion())
	app, err = forgegate.Initialize(app, c.Bool("debug"))
	if err != nil {
		return err
	}

	// Set app routes
	r := mux.NewRouter()
	forgegate.InitRoutes(app, r)

	// Serve the application
	forgegate.Serve(app, r)

	return nil
}
