// Package testdoubles provides spies for the observability interfaces of package eventstore.
//
//   - ContextualLoggerSpy captures context-aware log calls
//   - MetricsCollectorSpy captures duration, counter and value records
//   - TracingCollectorSpy captures started and finished spans
//   - LogHandlerSpy captures slog records
//
// The journal engine, the observable wrappers and the CLI are tested against these spies
// instead of a telemetry backend.
package testdoubles
