/*
 * Copyright © 2020-2021 ForgeGate contributors.
 *
 * This file is part of ForgeGate.
 *
 * ForgeGate is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License, included
 * in the LICENSE file in this source code package.
 */

package forgegate

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/writeas/web-core/log"

	"github.com/forgegate/forgegate/config"
)

var debugging bool

// app holds the read-only pieces every handler needs: configuration, the
// provider client, and the form decoder. Nothing in it mutates after
// Initialize, so requests share it without locking.
type app struct {
	router      *mux.Router
	cfg         *config.Config
	cfgFile     string
	oauthClient oauthClient
	formDecoder *schema.Decoder
}

// NewApp creates a new app instance.
func NewApp(cfgFile string) *app {
	return &app{
		cfgFile: cfgFile,
	}
}

// Initialize loads the app configuration and initializes the provider
// client. It returns the app and an error if the app couldn't be
// initialized.
func Initialize(app *app, debug bool) (*app, error) {
	debugging = debug

	if err := loadConfig(app); err != nil {
		return nil, err
	}
	app.cfg.Server.Dev = debug
	if app.cfg.Server.Dev {
		log.Info("Running in developer mode.")
	}

	if err := app.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %v", err)
	}
	log.Info("Brokering for %s...", app.cfg.App.FriendlyHost())

	app.formDecoder = schema.NewDecoder()
	app.formDecoder.IgnoreUnknownKeys(true)

	app.oauthClient = newGitHubClient(app.cfg)

	return app, nil
}

func newGitHubClient(cfg *config.Config) githubOauthClient {
	host := config.OrDefaultString(cfg.GitHubOauth.Host, githubHost)
	return githubOauthClient{
		ClientID:         cfg.GitHubOauth.ClientID,
		ClientSecret:     cfg.GitHubOauth.ClientSecret,
		AuthLocation:     host + "/login/oauth/authorize",
		ExchangeLocation: host + "/login/oauth/access_token",
		CallbackLocation: cfg.App.Host + "/callback",
		Scope:            config.OrDefaultString(cfg.GitHubOauth.Scope, "repo"),
		HttpClient:       config.DefaultHTTPClient(),
	}
}

func handleViewHealth(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "%s is up.\n", serverSoftware)
}

// Serve starts the broker server. It blocks until the process receives an
// interrupt or the listener fails.
func Serve(app *app, r *mux.Router) {
	app.router = r
	http.Handle("/", r)

	// Handle shutdown
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Info("Shutting down...")
		log.Info("Done.")
		os.Exit(0)
	}()

	var bindAddress = app.cfg.Server.Bind
	if bindAddress == "" {
		bindAddress = "localhost"
	}

	var err error
	if app.cfg.IsSecureStandalone() {
		log.Info("Serving on https://%s:443", bindAddress)
		log.Info("---")
		err = http.ListenAndServeTLS(
			fmt.Sprintf("%s:443", bindAddress), app.cfg.Server.TLSCertPath, app.cfg.Server.TLSKeyPath, nil)
	} else {
		log.Info("Serving on http://%s:%d", bindAddress, app.cfg.Server.Port)
		log.Info("---")
		err = http.ListenAndServe(fmt.Sprintf("%s:%d", bindAddress, app.cfg.Server.Port), nil)
	}
	if err != nil {
		log.Error("Unable to start: %v", err)
		os.Exit(1)
	}
}

// CreateConfig writes a default configuration file and exits.
func CreateConfig(app *app) error {
	log.Info("Creating configuration...")
	c := config.New()
	log.Info("Saving configuration %s...", app.cfgFile)
	if err := config.Save(c, app.cfgFile); err != nil {
		return fmt.Errorf("Unable to save configuration: %v", err)
	}
	return nil
}

// DoConfig runs the interactive configuration process.
func DoConfig(app *app) {
	if err := config.Configure(app.cfgFile); err != nil {
		log.Error("Unable to configure: %v", err)
		os.Exit(1)
	}
}

func loadConfig(app *app) error {
	log.Info("Loading %s configuration...", app.cfgFile)
	cfg, err := config.Load(app.cfgFile)
	if err != nil {
		return fmt.Errorf("Unable to load configuration: %v", err)
	}
	app.cfg = cfg
	return nil
}
