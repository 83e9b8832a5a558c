// Package observable wraps command and query handlers with metrics, tracing and logging,
// keeping the handlers themselves free of observability code.
//
// Wrappers are applied explicitly at wiring time:
//
//	coreHandler := checkoutbook.NewCommandHandler(library, journal)
//
//	handler, err := observable.NewCommandWrapper[checkoutbook.Command](
//		coreHandler,
//		observable.WithCommandMetrics[checkoutbook.Command](metricsCollector),
//		observable.WithCommandTracing[checkoutbook.Command](tracingCollector),
//		observable.WithCommandContextualLogging[checkoutbook.Command](contextualLogger),
//	)
//
//	result, err := handler.Handle(ctx, checkoutbook.BuildCommand("B001", "M001"))
//
// A command refused by a lending rule is recorded with status "rejected" and an error_type label
// (not_found, not_available, limit_exceeded, invalid_input); the core error is passed through unchanged.
package observable
