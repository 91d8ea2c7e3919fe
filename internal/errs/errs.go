// Package errs defines the error shapes the LightBnB API returns.
//
// Handlers and services return *HTTPError values; the global error
// handler serializes them as JSON so clients always see the same
// {code, message, status, errors, action} structure.
package errs
