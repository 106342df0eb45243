// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which defines its
// enablement and route registration.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps registered features and loads the enabled ones, in
// registration order, when the server starts.
package loader
