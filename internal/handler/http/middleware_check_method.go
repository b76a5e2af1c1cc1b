// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// A request whose path is known but whose method is not registered gets
// 404 Not Found instead of chi's default 405, so unsupported methods do
// not reveal which paths exist. Requests the router can serve after all
// are passed back to it.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
