// Package http implements the HTTP transport layer of the service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging,
// metrics, panic recovery, CORS, API-key checks and per-client rate limiting
// are handled in this package before requests are delegated to the service
// layer. Every response, including errors, is a JSON document.
package http
