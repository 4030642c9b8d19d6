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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
)

// TokenResponse contains data returned by the provider when an authorization
// code is exchanged for an access token. Exactly one of AccessToken and Error
// is meaningful per the provider's contract; a response carrying neither is
// treated as a success with no token.
type TokenResponse struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	Scope            string `json:"scope"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// tokenRequestMaxLen is the most bytes that we'll read from the provider's
// token endpoint. One megabyte is plenty.
const tokenRequestMaxLen = 1000000

// HttpClient performs outbound HTTP requests. Satisfied by *http.Client and
// by test doubles.
type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// oauthClient wraps the provider-specific pieces of an OAuth flow: where to
// send the user, and how to exchange the resulting code.
type oauthClient interface {
	GetProvider() string
	GetClientID() string
	GetCallbackLocation() string
	buildLoginURL(state string) (string, error)
	exchangeOauthCode(ctx context.Context, code string) (*TokenResponse, error)
}

func limitedJsonUnmarshal(body io.ReadCloser, n int, thing interface{}) error {
	lr := io.LimitReader(body, int64(n+1))
	data, err := ioutil.ReadAll(lr)
	if err != nil {
		return err
	}
	if len(data) == n+1 {
		return fmt.Errorf("content larger than max read allowance: %d", n)
	}
	return json.Unmarshal(data, thing)
}
