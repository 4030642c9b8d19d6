/*
 * Copyright © 2020-2021 ForgeGate contributors.
 *
 * This file is part of ForgeGate.
 *
 * ForgeGate is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License, included
 * in the LICENSE file in this source code package.
 */

package config

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/hashicorp/go-multierror"
)

var (
	domainReg = regexp.MustCompile("^https?://")
)

const (
	minPort = 80
	maxPort = 1<<16 - 1
)

func validateDomain(i string) error {
	if !domainReg.MatchString(i) {
		return fmt.Errorf("Domain must start with http:// or https://")
	}
	return nil
}

func validatePort(i string) error {
	p, err := strconv.Atoi(i)
	if err != nil {
		return err
	}
	if p < minPort || p > maxPort {
		return fmt.Errorf("Port must be a number %d - %d", minPort, maxPort)
	}
	return nil
}

func validateNonEmpty(i string) error {
	if i == "" {
		return fmt.Errorf("Must not be empty")
	}
	return nil
}

// Validate checks that the configuration can actually run a broker,
// collecting every problem rather than stopping at the first. The client
// secret is only required in exchange mode; the authorize leg needs a client
// id either way.
func (cfg *Config) Validate() error {
	var result *multierror.Error

	if cfg.App.Host == "" {
		result = multierror.Append(result, fmt.Errorf("app host is not set"))
	} else if err := validateDomain(cfg.App.Host); err != nil {
		result = multierror.Append(result, fmt.Errorf("app host: %v", err))
	}

	if cfg.GitHubOauth.ClientID == "" {
		result = multierror.Append(result, fmt.Errorf("oauth.github client_id is not set"))
	}
	if !cfg.GitHubOauth.PassThrough && cfg.GitHubOauth.ClientSecret == "" {
		result = multierror.Append(result, fmt.Errorf("oauth.github client_secret is required unless pass_through is enabled"))
	}
	if cfg.GitHubOauth.Host != "" {
		if err := validateDomain(cfg.GitHubOauth.Host); err != nil {
			result = multierror.Append(result, fmt.Errorf("oauth.github host: %v", err))
		}
	}

	return result.ErrorOrNil()
}
