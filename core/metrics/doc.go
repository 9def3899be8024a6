// Package metrics defines the interfaces used to observe a commute run.
// Route providers report each request to a RouteRecorder and the computed
// results go to a ResultsSink. Implementations backed by Prometheus live in
// infra/metrics.
package metrics
