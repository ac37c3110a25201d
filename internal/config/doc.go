// Package config provides configuration loading, merging, and validation
// facilities for the EWS sync client.
//
// Configuration is assembled from multiple sources. For every field the
// first source with a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables
//  3. Config file (JSON or YAML, chosen by extension)
//
// The main entry points are [GetStructuredConfig] for the merged view and
// [GetClientConfig] for the validated client runtime configuration.
package config
