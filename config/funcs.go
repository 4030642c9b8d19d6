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
	"net/http"
	"strings"
	"time"
)

// FriendlyHost returns the app's Host sans any schema
func (ac AppCfg) FriendlyHost() string {
	return ac.Host[strings.Index(ac.Host, "://")+len("://"):]
}

// OrDefaultString returns a default value if the given value is empty.
func OrDefaultString(value, defaultValue string) string {
	if len(value) == 0 {
		return defaultValue
	}
	return value
}

// DefaultHTTPClient returns a sane default HTTP client for outbound provider
// calls. The timeout covers the whole code-for-token exchange; its expiry is
// treated as a transport failure, not retried.
func DefaultHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 10 * time.Second,
	}
}
