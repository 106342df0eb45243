// Package middleware groups the Fiber middlewares used by the serve command.
//
//   - rayid: tags every request with an X-Ray-ID used for log correlation.
//   - auth: requires the X-API-Key header when an API key is configured.
//
// RayID must be registered first so every later log line can carry it.
package middleware
