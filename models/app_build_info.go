// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const notAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected with -ldflags.
type AppBuildInfo struct {
	name    string
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values are reported as
// "N/A" by the accessors.
func NewAppBuildInfo(name, version, date, commit string) AppBuildInfo {
	return AppBuildInfo{name: name, version: version, date: date, commit: commit}
}

// Name returns the binary name.
func (a AppBuildInfo) Name() string { return orNA(a.name) }

// Version returns the semantic version of the build.
func (a AppBuildInfo) Version() string { return orNA(a.version) }

// Date returns the build timestamp.
func (a AppBuildInfo) Date() string { return orNA(a.date) }

// Commit returns the source commit of the build.
func (a AppBuildInfo) Commit() string { return orNA(a.commit) }

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return notAvailable
	}
	return strings.TrimSpace(v)
}
