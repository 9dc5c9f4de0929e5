// Package requestid tags every HTTP request with a correlation ID, exposes it
// through the request context and feeds it to pkg/logger.
package requestid
