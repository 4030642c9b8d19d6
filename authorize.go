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

	"github.com/gorilla/mux"
	"github.com/writeas/impart"
	"github.com/writeas/web-core/log"
)

// handleAuthorize starts the OAuth flow: it folds the caller's redirect
// target and any IndieAuth/PKCE metadata into an encoded state blob and
// sends the user to the provider's authorization page.
//
// The provider-facing redirect_uri is always the broker's own /callback,
// derived from the configured host. Only the post-callback target is caller
// supplied, and only after parsing as an absolute URL. The provider-facing
// scope likewise comes from configuration, not from the caller.
func handleAuthorize(app *app, w http.ResponseWriter, r *http.Request) error {
	vars := mux.Vars(r)

	redirectURI := r.FormValue("redirect_uri")
	if redirectURI == "" {
		return ErrMissingRedirectURI
	}
	if u, err := url.Parse(redirectURI); err != nil || !u.IsAbs() {
		return ErrInvalidRedirectURI
	}

	state, err := encodeState(&DecodedState{
		RedirectURI:         redirectURI,
		ClientState:         r.FormValue("state"),
		ClientID:            r.FormValue("client_id"),
		Me:                  r.FormValue("me"),
		Scope:               r.FormValue("scope"),
		CodeChallenge:       r.FormValue("code_challenge"),
		CodeChallengeMethod: r.FormValue("code_challenge_method"),
		User:                vars["user"],
		Repo:                vars["repo"],
	})
	if err != nil {
		log.Error("handleAuthorize: %s", err)
		return impart.HTTPError{Status: http.StatusInternalServerError, Message: "could not prepare oauth redirect url"}
	}

	location, err := app.oauthClient.buildLoginURL(state)
	if err != nil {
		log.Error("handleAuthorize: %s", err)
		return impart.HTTPError{Status: http.StatusInternalServerError, Message: "could not prepare oauth redirect url"}
	}
	return impart.HTTPError{Status: http.StatusFound, Message: location}
}
