// Package config provides configuration loading, merging, and validation
// facilities for the TAXII server and the administrative CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags (or CLI overrides, see [GetStructuredConfigWith])
//  3. JSON config file
//
// Fields left empty by every source receive the defaults declared in
// config_validation.go before validation.
package config
