// Package http implements the HTTP transport of the verify API.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, response compression, request timeouts and the
// HashSHA256 integrity header are applied here before requests reach the
// registry service.
package http
