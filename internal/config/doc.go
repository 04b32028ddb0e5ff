// Package config provides configuration loading, merging, and validation
// for the verification server and the terminal client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetServerConfig] and [GetClientConfig]; both project
// the shared [StructuredConfig] into a binary-specific view.
package config
