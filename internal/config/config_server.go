// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the verify API configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App     App
	Server  Server
	Storage Storage

	// Seed is loaded into the in-memory registry when no DSN is configured.
	Seed Seed
}

// Seed lists the identifiers of the in-memory registry.
type Seed struct {
	Confirmed   []string
	UnderReview []string
}

// GetServerConfig builds and validates the server view of the merged
// configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		Storage: cfg.Storage,
		Seed: Seed{
			Confirmed:   cfg.Verifier.Confirmed,
			UnderReview: cfg.Verifier.UnderReview,
		},
	}
}
