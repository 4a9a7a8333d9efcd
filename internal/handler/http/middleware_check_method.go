// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It looks up the route whose pattern matches the raw request path and
// answers with HTTP 405 and a JSON error body, advertising the methods the
// route does handle in the Allow header. If the requested method IS
// registered for the matched route, the request is forwarded to the
// router's normal ServeHTTP pipeline so that the appropriate handler
// executes as usual.
//
// Only exact pattern matches are considered; parameterised or wildcard
// segments are not expanded during this check. When no pattern matches, the
// response is a JSON 404.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		var foundRoute *chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == requestedURL {
				foundRoute = &route
				break
			}
		}

		if foundRoute == nil {
			writeError(w, r, ErrRouteNotFound)
			return
		}

		if _, ok := foundRoute.Handlers[requestedHTTPMethod]; ok {
			router.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Allow", allowedMethods(*foundRoute))
		writeError(w, r, ErrMethodNotAllowed)
	}
}

func allowedMethods(route chi.Route) string {
	methods := make([]string, 0, len(route.Handlers))
	for method := range route.Handlers {
		methods = append(methods, method)
	}
	slices.Sort(methods)
	return strings.Join(methods, ", ")
}
