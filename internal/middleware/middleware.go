// Package middleware holds the echo middleware of the LightBnB API:
// request ids, the request-scoped logger, session authentication,
// rate limiting, New Relic tracing and the global error handler.
package middleware
