package lookup

import (
	"time"

	"mnp-alarm/core/reconcile"
)

// Config holds configuration for the HLR lookup service.
type Config struct {
	// URL is the endpoint template. {login}, {password} and {number} are
	// replaced with query-escaped values.
	URL string `mapstructure:"url" default:""`
	// Login is the HLR account login.
	Login string `mapstructure:"login" default:""`
	// Password is the HLR account password.
	Password string `mapstructure:"password" default:""`
	// Concurrency caps simultaneous in-flight lookups.
	Concurrency int `mapstructure:"concurrency" default:"8"`
	// TimeoutSeconds bounds each individual lookup.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// RatePerSecond limits request rate across a batch; 0 disables it.
	RatePerSecond float64 `mapstructure:"rate_per_second" default:"0"`
	// NetworkField is the response key holding the network identifier.
	NetworkField string `mapstructure:"network_field" default:"mccmnc"`
	// OwnerField is the response key holding the owner identifier.
	OwnerField string `mapstructure:"owner_field" default:"ownerID"`
}

// Normalizer returns the record normalizer for the configured response keys.
func (c Config) Normalizer() reconcile.Normalizer {
	n := reconcile.DefaultNormalizer()
	if c.NetworkField != "" {
		n.NetworkField = c.NetworkField
	}
	if c.OwnerField != "" {
		n.OwnerField = c.OwnerField
	}
	return n
}

func (c Config) concurrency() int {
	if c.Concurrency <= 0 {
		return 8
	}
	return c.Concurrency
}

func (c Config) timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
