// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package form drives a single verification form: it validates the submitted
// identifier, flips the submit control into its busy state, dispatches the
// verification call and presents whatever comes back.
//
// The [Orchestrator] is an explicit state machine:
//
//	Idle ──Submit──▶ Validating ──empty──▶ Idle
//	                     │
//	                     └──non-empty──▶ Pending ──Settle──▶ Settling ──▶ Idle
//
// Submit returns a [Dispatch], the task that performs the call. Running it
// yields a [Settlement], the completion message, which is handed back to
// Settle on the goroutine that owns the UI. The busy flag is released in a
// deferred call, so it is cleared even when presenting the result fails.
package form
