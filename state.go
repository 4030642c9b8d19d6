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
	"encoding/base64"
	"encoding/json"
)

// DecodedState is the bookkeeping payload threaded through the external
// provider's redirect as the opaque `state` parameter. The provider never
// inspects it; the broker round-trips it so every request stays resolvable
// from its own query string.
//
// The blob is plain base64 JSON, not signed or encrypted. The scheme relies
// on transport confidentiality and on the state being opaque to the provider.
// Changing this (e.g. layering an HMAC over the encoded payload) changes the
// wire format consumed by the provider's redirect.
type DecodedState struct {
	// RedirectURI is the absolute URL the broker eventually redirects to.
	// It is supplied by whoever initiated the authorize leg, not by the
	// provider, and is never interpreted beyond URL parsing.
	RedirectURI string `json:"redirectUri"`

	// ClientState is a client-chosen opaque value echoed back verbatim as
	// `state` so the client can do its own CSRF check.
	ClientState string `json:"clientState,omitempty"`

	// IndieAuth / PKCE metadata, passed through unexamined by the OAuth leg.
	ClientID            string `json:"clientId,omitempty"`
	Me                  string `json:"me,omitempty"`
	Scope               string `json:"scope,omitempty"`
	CodeChallenge       string `json:"codeChallenge,omitempty"`
	CodeChallengeMethod string `json:"codeChallengeMethod,omitempty"`

	// Routing metadata from the authorize path.
	User string `json:"user,omitempty"`
	Repo string `json:"repo,omitempty"`
}

// encodeState serializes s as canonical JSON wrapped in URL-safe base64.
func encodeState(s *DecodedState) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// decodeState is the exact inverse of encodeState. It returns nil on any
// malformed input -- bad base64, bad JSON -- so callers can uniformly answer
// with a 400-class error instead of handling parse faults.
func decodeState(raw string) *DecodedState {
	data, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	s := &DecodedState{}
	if err = json.Unmarshal(data, s); err != nil {
		return nil
	}
	return s
}
