// Package http implements the REST endpoint of the account server.
//
// It exposes the accounts collection under /api/accounts together with login,
// logout and version routes. Cross-cutting concerns such as request tracing,
// access logging, response compression, ETags and bearer authentication are
// handled by middleware in this package before requests reach the service
// layer.
package http
