// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings shared by client and server.
	App App `envPrefix:"APP_"`

	// Storage holds the registry database settings (server only).
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeouts of the verify API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the verify API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Verifier selects and tunes the client's verification backend.
	Verifier Verifier `envPrefix:"VERIFIER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// HashKey is the shared HMAC key for the HashSHA256 response header.
	// Empty disables signing on the server and checking on the client.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is reported by GET /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the registry storage settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the registry database connection settings.
type DB struct {
	// DSN selects the registry backend: empty for the in-memory registry,
	// "postgres://..." for PostgreSQL, anything else is a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the verify API.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's connection settings for the verify API.
type Adapter struct {
	// HTTPAddress is the base address of the verify API
	// (e.g. "localhost:8080" or "https://verify.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds one verification call. Expiry is shown to the
	// user as a network error.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Verifier configures the client's verification backend.
type Verifier struct {
	// Mode is "simulated" (built-in catalogue, no network) or "remote".
	// Env: VERIFIER_MODE
	Mode string `env:"MODE"`

	// Latency is the artificial round-trip delay of the simulated backend.
	// Env: VERIFIER_LATENCY
	Latency time.Duration `env:"LATENCY"`

	// Confirmed lists identifiers reported as verified by the simulated
	// backend. The server seeds its in-memory registry from it too.
	// Env: VERIFIER_CONFIRMED (comma separated)
	Confirmed []string `env:"CONFIRMED" envSeparator:","`

	// UnderReview lists identifiers reported as pending.
	// Env: VERIFIER_UNDER_REVIEW (comma separated)
	UnderReview []string `env:"UNDER_REVIEW" envSeparator:","`

	// FailTransport makes every simulated call fail at transport level.
	// Env: VERIFIER_FAIL_TRANSPORT
	FailTransport bool `env:"FAIL_TRANSPORT"`
}

// defaultConfig returns the built-in defaults, the lowest-priority source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: "dev"},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Verifier: Verifier{
			Mode:        string(ModeSimulated),
			Latency:     1500 * time.Millisecond,
			Confirmed:   []string{"VOC-123"},
			UnderReview: []string{"VOC-456"},
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources (later sources win for non-zero fields):
//  0. Defaults
//  1. Environment variables
//  2. Command-line flags (args, usually os.Args[1:])
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
