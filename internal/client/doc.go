// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the verification client's process lifecycle.
//
// It runs the terminal UI under a signal-aware context and treats a quit by
// the user as a normal exit.
package client
