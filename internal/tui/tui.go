// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the verification client: a
// single Bubble Tea screen with an identifier input, a submit button and a
// result panel.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-intern-verify/internal/config"
	"github.com/MKhiriev/go-intern-verify/internal/logger"
	"github.com/MKhiriev/go-intern-verify/internal/service"
	"github.com/MKhiriev/go-intern-verify/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	verifier       service.VerificationService
	buildInfo      models.AppBuildInfo
	requestTimeout time.Duration
	logger         *logger.Logger
}

func New(verifier service.VerificationService, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if verifier == nil {
		return nil, errors.New("tui: verifier is nil")
	}

	return &TUI{
		verifier:       verifier,
		buildInfo:      buildInfo,
		requestTimeout: cfg.Adapter.RequestTimeout,
		logger:         log,
	}, nil
}

// Run shows the verification screen until the user quits or ctx is done.
// A quit by ctrl+c is reported as [ErrUserQuit], cancellation of ctx is not
// an error.
func (t *TUI) Run(ctx context.Context) error {
	model := NewVerifyModel(ctx, t.verifier, t.buildInfo, t.requestTimeout, t.logger)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run verification screen: %w", err)
	}

	if result, ok := finalModel.(*VerifyModel); ok && result.quit {
		return ErrUserQuit
	}

	return nil
}
