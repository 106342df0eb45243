// Package server holds the HTTP server configuration.
//
// The serve command runs reconciliation on demand over HTTP. This package
// defines the listen port and the optional API key protecting the check routes.
package server
