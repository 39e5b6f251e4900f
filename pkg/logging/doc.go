// Package logging provides structured logging with context propagation for
// the time-frequency dataflow engine, built on Go's standard log/slog.
//
// # Overview
//
// Logger wraps an slog.Logger and adds chainable With* methods that attach
// workflow/execution/node context as structured fields, plus leveled
// Debug/Info/Warn/Error/Fatal methods (and formatted Xf variants) that match
// the shape pkg/workflow's facade uses.
//
// # Basic Usage
//
//	import "github.com/spectrawave/tfgraph/pkg/logging"
//
//	logger := logging.New(logging.DefaultConfig())
//	logger.WithWorkflowID("time-frequency").
//	    WithExecutionID(executionID).
//	    Info("workflow execution started")
//
//	logger.WithError(err).Errorf("verb %s failed", verb)
//
// # Configuration
//
//	cfg := logging.Config{
//	    Level:         "debug",       // debug, info, warn, error (default info)
//	    Output:        os.Stdout,     // where logs are written
//	    Pretty:        false,         // true for slog's text handler, false for JSON
//	    IncludeCaller: false,         // add source file:line
//	}
//	logger := logging.New(cfg)
//
// # Output
//
// JSON (default):
//
//	{"time":"2024-01-15T10:30:00Z","level":"INFO","msg":"workflow execution started","workflow_id":"time-frequency","execution_id":"exec-456"}
//
// Pretty (Config.Pretty = true) uses slog's text handler instead.
//
// # Context Propagation
//
// WithContext/FromContext store and retrieve a *Logger on a context.Context,
// for call chains that don't thread a logger through explicitly:
//
//	ctx = logger.WithContext(ctx)
//	// ... later, possibly in a different function ...
//	logging.FromContext(ctx).Info("resumed")
//
// FromContext falls back to a default logger (DefaultConfig) if none was
// stored.
//
// # Chained Fields
//
// WithWorkflowID, WithExecutionID, WithNodeID, and WithNodeType each return a
// new *Logger with one additional structured field; WithField/WithFields
// attach arbitrary key/value pairs, and WithError attaches an error. Each
// call is immutable — it does not mutate the receiver, so a base logger can
// be reused to start multiple independent chains.
//
// # Testing
//
// Point Output at a bytes.Buffer to assert on emitted log lines:
//
//	buf := &bytes.Buffer{}
//	logger := logging.New(logging.Config{Level: "debug", Output: buf})
//	logger.Info("test message")
//	// buf.String() now contains a JSON log line
package logging
