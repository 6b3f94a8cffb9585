// Package server runs the account server's transports.
//
// The accounts REST API and the optional gRPC health endpoint start together.
// They stop together on SIGTERM, SIGINT or SIGQUIT, or as soon as either
// transport fails.
package server
