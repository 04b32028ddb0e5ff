// Package server runs the verify API's HTTP server.
//
// It handles startup, signal handling, and graceful shutdown.
package server
