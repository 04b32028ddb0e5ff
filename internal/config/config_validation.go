// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks invariants shared by both binaries.
func (cfg *StructuredConfig) validate() error {
	if cfg.Verifier.Latency < 0 {
		return fmt.Errorf("%w: negative latency %s", ErrInvalidVerifierConfigs, cfg.Verifier.Latency)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Mode {
	case ModeSimulated:
	case ModeRemote:
		if cfg.Adapter.HTTPAddress == "" {
			return ErrInvalidAdapterConfigs
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidVerifierConfigs, cfg.Mode)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
