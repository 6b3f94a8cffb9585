// Package config loads, merges and validates configuration for the account
// server and the admin client.
//
// Sources are applied in order, later non-zero values overriding earlier ones:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file (path taken from CONFIG / -c / -config)
//
// Entry points are [GetServerConfig] and [GetClientConfig]; both build a
// [StructuredConfig] and validate the view their binary needs.
package config
