/*
 * Copyright © 2020-2021 ForgeGate contributors.
 *
 * This file is part of ForgeGate.
 *
 * ForgeGate is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License, included
 * in the LICENSE file in this source code package.
 */

// Package config holds and assists in the configuration of the ForgeGate
// broker.
package config

import (
	"os"

	"gopkg.in/ini.v1"
)

const (
	// FileName is the default configuration file name
	FileName = "config.ini"
)

type (
	// ServerCfg holds values that affect how the HTTP server runs
	ServerCfg struct {
		Port int    `ini:"port"`
		Bind string `ini:"bind"`

		TLSCertPath string `ini:"tls_cert_path"`
		TLSKeyPath  string `ini:"tls_key_path"`

		Dev bool `ini:"-"`
	}

	// AppCfg holds values that affect the broker's behavior as a whole
	AppCfg struct {
		// Host is the broker's own public-facing URL. The provider-facing
		// callback URL is derived from it, never from caller input.
		Host string `ini:"host"`
	}

	// GitHubOauthCfg holds the provider credentials and the deployment's
	// trust model. ClientSecret is bound at startup and must never appear
	// in a response, log line, or redirect URL.
	GitHubOauthCfg struct {
		ClientID     string `ini:"client_id"`
		ClientSecret string `ini:"client_secret"`

		// Host overrides the provider origin, for GitHub Enterprise.
		Host string `ini:"host"`

		// Scope is the provider-facing OAuth scope requested on the
		// authorize leg.
		Scope string `ini:"scope"`

		// PassThrough forwards the authorization code to the client
		// untouched instead of exchanging it server-side. Only set this
		// when the calling client holds the provider secret itself.
		PassThrough bool `ini:"pass_through"`
	}

	// Config holds the complete configuration for running the broker
	Config struct {
		Server      ServerCfg      `ini:"server"`
		App         AppCfg         `ini:"app"`
		GitHubOauth GitHubOauthCfg `ini:"oauth.github"`
	}
)

// New returns a Config with sane defaults
func New() *Config {
	return &Config{
		Server: ServerCfg{
			Port: 8077,
			Bind: "localhost",
		},
		App: AppCfg{
			Host: "http://localhost:8077",
		},
		GitHubOauth: GitHubOauthCfg{
			Scope: "repo",
		},
	}
}

// IsSecureStandalone returns whether or not the application is running as a
// standalone server with TLS enabled.
func (cfg *Config) IsSecureStandalone() bool {
	return cfg.Server.Port == 443 && cfg.Server.TLSCertPath != "" && cfg.Server.TLSKeyPath != ""
}

// Load reads the given configuration file, then applies environment variable
// overrides for the provider credentials, and returns the result. Secrets
// can this way stay out of the file entirely.
func Load(fname string) (*Config, error) {
	if fname == "" {
		fname = FileName
	}
	cfg, err := ini.Load(fname)
	if err != nil {
		return nil, err
	}

	// Parse INI file
	uc := New()
	err = cfg.MapTo(uc)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("FORGEGATE_CLIENT_ID"); v != "" {
		uc.GitHubOauth.ClientID = v
	}
	if v := os.Getenv("FORGEGATE_CLIENT_SECRET"); v != "" {
		uc.GitHubOauth.ClientSecret = v
	}
	return uc, nil
}

// Save writes the given Config to the given file.
func Save(uc *Config, fname string) error {
	cfg := ini.Empty()
	err := ini.ReflectFrom(cfg, uc)
	if err != nil {
		return err
	}

	if fname == "" {
		fname = FileName
	}
	return cfg.SaveTo(fname)
}
