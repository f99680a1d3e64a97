// Package metrics provides build metrics for the page builder.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed at call sites. The CLI swaps in a
// PrometheusRecorder when a metrics textfile is requested and writes the
// registry with WriteTextfile after the build, for pickup by the node
// exporter textfile collector.
package metrics
