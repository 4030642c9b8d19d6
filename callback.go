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
	"net/url"

	"github.com/writeas/impart"
	"github.com/writeas/web-core/log"
)

// handleOAuthCallback is the provider's redirect target. It validates the
// returning request, optionally exchanges the authorization code for a
// token, and sends the user on to the redirect target recorded in the state
// blob at authorize time.
//
// Two trust models exist for the final leg, selected by the pass_through
// config switch. In exchange mode (the default) the broker holds the client
// secret and trades the code for a token itself, so the secret never reaches
// the browser. In pass-through mode the code is forwarded verbatim and the
// calling client performs the exchange with its own copy of the secret. A
// deployment must commit to one; clients built for one model will not
// understand responses from the other.
func handleOAuthCallback(app *app, w http.ResponseWriter, r *http.Request) error {
	code := r.FormValue("code")
	state := r.FormValue("state")

	// A provider-reported error outranks every other check. Forward it to
	// the client when the state still yields a redirect target; otherwise
	// the broker's direct caller is all we have.
	if errCode := r.FormValue("error"); errCode != "" {
		desc := r.FormValue("error_description")
		ds := decodeState(state)
		if ds == nil || ds.RedirectURI == "" {
			return writeJSON(w, http.StatusBadRequest, providerError{errCode, desc})
		}
		return redirectWithError(ds, errCode, desc)
	}

	if code == "" || state == "" {
		return ErrMissingCodeOrState
	}

	ds := decodeState(state)
	if ds == nil || ds.RedirectURI == "" {
		if debugging {
			log.Info("callback: state did not decode to a redirect target")
		}
		return ErrInvalidState
	}
	dest, err := url.Parse(ds.RedirectURI)
	if err != nil {
		return ErrInvalidState
	}

	q := dest.Query()
	if app.cfg.GitHubOauth.PassThrough {
		q.Set("code", code)
	} else {
		tok, err := app.oauthClient.exchangeOauthCode(r.Context(), code)
		if err != nil {
			// Recoverable from the end user's point of view: surface it at
			// the redirect target, not as a 5xx to the provider's redirect
			// chain.
			log.Error("callback: unable to exchangeOauthCode: %s", err)
			return redirectWithError(ds, "token_exchange_failed", err.Error())
		}
		if tok.Error != "" {
			return redirectWithError(ds, tok.Error, tok.ErrorDescription)
		}
		// A 2xx body with neither token nor error still redirects; the
		// client sees a success with no token parameters.
		if tok.AccessToken != "" {
			q.Set("access_token", tok.AccessToken)
			if tok.TokenType != "" {
				q.Set("token_type", tok.TokenType)
			}
			if tok.Scope != "" {
				q.Set("scope", tok.Scope)
			}
		}
	}
	if ds.ClientState != "" {
		q.Set("state", ds.ClientState)
	}
	dest.RawQuery = q.Encode()
	return impart.HTTPError{Status: http.StatusFound, Message: dest.String()}
}

// redirectWithError sends the user to the state's redirect target with
// error and error_description query parameters, echoing the client's own
// state value when one was carried.
func redirectWithError(ds *DecodedState, code, description string) error {
	dest, err := url.Parse(ds.RedirectURI)
	if err != nil {
		return ErrInvalidState
	}
	q := dest.Query()
	q.Set("error", code)
	if description != "" {
		q.Set("error_description", description)
	}
	if ds.ClientState != "" {
		q.Set("state", ds.ClientState)
	}
	dest.RawQuery = q.Encode()
	return impart.HTTPError{Status: http.StatusFound, Message: dest.String()}
}
