// Package observer provides an event-driven observer pattern for workflow
// execution monitoring.
//
// # Overview
//
// The observer package lets callers watch TimeFrequency workflow execution
// without coupling to the graph engine itself: a Manager holds a list of
// Observer implementations and dispatches each Event to all of them.
//
// # Observer Interface
//
//	type Observer interface {
//	    OnEvent(ctx context.Context, event Event)
//	}
//
// # Events
//
// Two workflow-level event types bracket every graph execution:
//
//	EventWorkflowStart - emitted before graph.Execute runs
//	EventWorkflowEnd   - emitted after it returns, Status reflecting success
//	                     or failure and Error set on failure
//
// Four node-level event types exist (EventNodeStart, EventNodeEnd,
// EventNodeSuccess, EventNodeFailure) for observers that want finer-grained
// visibility than the workflow-level pair; the bundled ConsoleObserver
// handles all six.
//
// # Basic Usage
//
//	import "github.com/spectrawave/tfgraph/pkg/observer"
//
//	mgr := observer.NewManager()
//	mgr.Register(observer.NewConsoleObserver())
//
//	mgr.Notify(ctx, observer.Event{
//	    Type:        observer.EventWorkflowStart,
//	    Status:      observer.StatusStarted,
//	    Timestamp:   time.Now(),
//	    ExecutionID: executionID,
//	})
//
// # Custom Observer Example
//
//	type MetricsObserver struct {
//	    started, completed, failed int
//	}
//
//	func (o *MetricsObserver) OnEvent(ctx context.Context, event observer.Event) {
//	    switch event.Type {
//	    case observer.EventWorkflowStart:
//	        o.started++
//	    case observer.EventWorkflowEnd:
//	        if event.Status == observer.StatusFailure {
//	            o.failed++
//	        } else {
//	            o.completed++
//	        }
//	    }
//	}
//
// # Dispatch Order and Concurrency
//
// Manager.Notify calls every registered observer's OnEvent synchronously, in
// registration order, on the calling goroutine, before returning. This is a
// deliberate departure from a fire-and-forget/goroutine-per-observer design:
// the dataflow engine this package serves is single-threaded and forbids
// re-entrant calls into its own verbs (see the graph package), so dispatching
// notifications on background goroutines would let an observer race the very
// graph state it is being told about. An observer that panics is recovered
// by the Manager and does not prevent remaining observers from running or
// propagate to the caller.
//
// # Built-in Observers
//
// NoOpObserver discards every event; it is the zero-cost default when no
// observer is configured. ConsoleObserver formats events through a Logger
// (NoOpLogger or DefaultLogger, or any caller-supplied implementation of the
// Logger interface) at a level chosen by event type: workflow/node starts and
// successes log at Debug/Info, failures log at Warn/Error.
package observer
