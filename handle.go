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
	"encoding/json"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/writeas/impart"
	"github.com/writeas/web-core/log"
)

type handlerFunc func(app *app, w http.ResponseWriter, r *http.Request) error

// errorBody is the terminal JSON error shape of the broker's endpoints. The
// OAuth and IndieAuth contracts fix it as a bare {"error": ...} object, so
// impart's envelope is bypassed for it.
type errorBody struct {
	Error string `json:"error"`
}

type Handler struct {
	app *app
}

// NewHandler returns a new Handler instance for the app's routes.
func NewHandler(app *app) *Handler {
	return &Handler{app}
}

// OAuth handles broker requests. Redirect-class HTTPErrors returned by f
// become Location headers; everything else is written out as JSON.
func (h *Handler) OAuth(f handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.handleError(w, r, func() error {
			status := 200
			start := time.Now()

			defer func() {
				if e := recover(); e != nil {
					log.Error("%s:\n%s", e, debug.Stack())
					writeJSON(w, http.StatusInternalServerError, errorBody{"Something didn't work quite right."})
					status = 500
				}

				log.Info("\"%s %s\" %d %s \"%s\"", r.Method, r.RequestURI, status, time.Since(start), r.UserAgent())
			}()

			err := f(h.app, w, r)
			if err != nil {
				if err, ok := err.(impart.HTTPError); ok {
					status = err.Status
				} else {
					status = 500
				}
			}

			return err
		}())
	}
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	if err, ok := err.(impart.HTTPError); ok {
		if err.Status >= 300 && err.Status < 400 {
			sendRedirect(w, err.Status, err.Message)
			return
		}

		writeJSON(w, err.Status, errorBody{err.Message})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorBody{"This is an unhelpful error message for a miscellaneous internal error."})
}

func (h *Handler) LogHandlerFunc(f http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.handleError(w, r, func() error {
			status := 200
			start := time.Now()

			defer func() {
				if e := recover(); e != nil {
					log.Error("Handler.LogHandlerFunc\n\n%s: %s", e, debug.Stack())
					status = 500
				}

				log.Info("\"%s %s\" %d %s \"%s\"", r.Method, r.RequestURI, status, time.Since(start), r.UserAgent())
			}()

			f(w, r)

			return nil
		}())
	}
}

func sendRedirect(w http.ResponseWriter, code int, location string) int {
	w.Header().Set("Location", location)
	w.WriteHeader(code)
	return code
}

// writeJSON writes v as a bare JSON body, bypassing impart's envelope for
// responses whose shape is fixed by the OAuth and IndieAuth contracts.
func writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
