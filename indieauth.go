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
	"net/http"
	"strings"

	"github.com/writeas/impart"
	"github.com/writeas/web-core/log"
)

// tokenInfo is the IndieAuth verification response for a bearer token.
type tokenInfo struct {
	Me       string `json:"me"`
	ClientID string `json:"client_id"`
	Scope    string `json:"scope"`
}

type tokenExchangeRequest struct {
	Code  string `schema:"code"`
	State string `schema:"state"`
}

type tokenExchangeResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
	Me          string `json:"me,omitempty"`
}

type codeGrantResponse struct {
	Code string `json:"code"`
	Me   string `json:"me,omitempty"`
}

// handleVerifyToken asserts a previously issued token locally, without
// talking to the provider. On a stateless broker the token is itself an
// encoded state blob, so verification is decoding it and reading back the
// identity claims it carries.
func handleVerifyToken(app *app, w http.ResponseWriter, r *http.Request) error {
	t := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if t == "" {
		t = r.FormValue("code")
	}
	if t == "" {
		t = r.FormValue("token")
	}
	if t == "" {
		return ErrNoAccessToken
	}

	ds := decodeState(t)
	if ds == nil {
		return ErrBadAccessToken
	}
	return writeJSON(w, http.StatusOK, tokenInfo{
		Me:       ds.Me,
		ClientID: ds.ClientID,
		Scope:    ds.Scope,
	})
}

// handleExchangeToken is the JSON twin of the callback's success path, for
// IndieAuth clients that POST the code themselves instead of riding the
// redirect. Validation mirrors the callback's missing/invalid-state rules.
func handleExchangeToken(app *app, w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return impart.HTTPError{Status: http.StatusBadRequest, Message: "Unable to parse form."}
	}
	var xr tokenExchangeRequest
	if err := app.formDecoder.Decode(&xr, r.PostForm); err != nil {
		return impart.HTTPError{Status: http.StatusBadRequest, Message: "Unable to parse form."}
	}

	if xr.Code == "" || xr.State == "" {
		return ErrMissingCodeOrState
	}
	ds := decodeState(xr.State)
	if ds == nil || ds.RedirectURI == "" {
		return ErrInvalidState
	}

	if app.cfg.GitHubOauth.PassThrough {
		return writeJSON(w, http.StatusOK, codeGrantResponse{Code: xr.Code, Me: ds.Me})
	}

	tok, err := app.oauthClient.exchangeOauthCode(r.Context(), xr.Code)
	if err != nil {
		log.Error("token: unable to exchangeOauthCode: %s", err)
		return writeJSON(w, http.StatusBadRequest, providerError{"token_exchange_failed", err.Error()})
	}
	if tok.Error != "" {
		return writeJSON(w, http.StatusBadRequest, providerError{tok.Error, tok.ErrorDescription})
	}

	scope := tok.Scope
	if scope == "" {
		scope = ds.Scope
	}
	return writeJSON(w, http.StatusOK, tokenExchangeResponse{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		Scope:       scope,
		Me:          ds.Me,
	})
}
