package config

import (
	"fmt"
	"time"
)

// VerifierMode selects the client's verification backend.
type VerifierMode string

const (
	// ModeSimulated answers from a built-in catalogue after a fixed delay.
	ModeSimulated VerifierMode = "simulated"
	// ModeRemote calls GET /api/verify/{identifier} on the verify API.
	ModeRemote VerifierMode = "remote"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey enables checking of the HashSHA256 response header.
	HashKey string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the verify API base address.
	HTTPAddress string
	// RequestTimeout bounds a single verification call.
	RequestTimeout time.Duration
}

// ClientSimulation tunes the simulated verification backend.
type ClientSimulation struct {
	Latency       time.Duration
	Confirmed     []string
	UnderReview   []string
	FailTransport bool
}

// ClientConfig is the client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App        ClientApp
	Adapter    ClientAdapter
	Mode       VerifierMode
	Simulation ClientSimulation
}

// GetClientConfig builds and validates the client view of the merged
// configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{HashKey: cfg.App.HashKey},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Mode: VerifierMode(cfg.Verifier.Mode),
		Simulation: ClientSimulation{
			Latency:       cfg.Verifier.Latency,
			Confirmed:     cfg.Verifier.Confirmed,
			UnderReview:   cfg.Verifier.UnderReview,
			FailTransport: cfg.Verifier.FailTransport,
		},
	}
}
