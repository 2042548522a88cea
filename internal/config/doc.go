// Package config provides configuration loading, merging, and validation
// facilities for the sync client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Fields still empty afterwards take the values of the built-in defaults.
// The main entry points are [GetStructuredConfig] and [GetClientConfig].
package config
