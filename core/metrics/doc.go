// Package metrics exposes Prometheus counters for lookups, runs,
// discrepancies and alerts. The serve command publishes them on /metrics.
package metrics
