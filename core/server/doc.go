// Package server holds the HTTP server configuration.
//
// It defines the listening port and the optional API key protecting the
// endpoints. The actual Fiber application is assembled in cmd/start.go;
// this package only carries the configuration surface so that core/config
// can aggregate it alongside storage and logging.
package server
