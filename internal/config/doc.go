// Package config provides configuration loading, merging, and validation
// facilities for the client.
//
// Configuration is assembled from multiple sources; earlier sources take
// precedence for non-zero fields:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig], which projects the merged
// [StructuredConfig] into a validated [ClientConfig].
package config
