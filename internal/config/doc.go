// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Optional settings left empty by every source are filled with defaults
// (token duration 1h, bcrypt default cost, and so on). The token signing
// secret has no default.
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the terminal client.
package config
