// Package metrics records navigation build metrics.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics stay optional:
//
//	gen := generator.New(cfg, generator.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// PrometheusRecorder exposes build durations, outcomes, validation issue
// counts and export writes under the "navconfig" namespace.
package metrics
