// Package config provides configuration loading, merging, and validation
// facilities for the secure store service.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied to the merged result before validation. The main
// entry point is [GetStructuredConfig].
package config
