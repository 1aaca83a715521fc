// Package server holds the HTTP server configuration and the global Fiber
// error handler. The environment flag controls how much internal detail
// leaks into 500 responses: everything in development, a generic message
// in production.
package server
