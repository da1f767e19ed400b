package trycatch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Observability constants for asynchronous settlements.
const (
	// Metrics.
	SettledTotal  = metricz.Key("trycatch.settled.total")
	OkTotal       = metricz.Key("trycatch.ok.total")
	ErrTotal      = metricz.Key("trycatch.err.total")
	PanicsTotal   = metricz.Key("trycatch.panics.total")
	CanceledTotal = metricz.Key("trycatch.canceled.total")

	// Spans.
	SettleSpan = tracez.Key("trycatch.settle")

	// Tags.
	TagID      = tracez.Tag("trycatch.id")
	TagOutcome = tracez.Tag("trycatch.outcome")
	TagError   = tracez.Tag("trycatch.error")

	// Hook event keys.
	EventSettled = hookz.Key("trycatch.settled")
)

// Outcome classifies how a computation settled.
type Outcome string

const (
	OutcomeOk       Outcome = "ok"
	OutcomeErr      Outcome = "err"
	OutcomePanic    Outcome = "panic"
	OutcomeCanceled Outcome = "canceled"
)

func outcomeOf(err error, panicked bool) Outcome {
	switch {
	case panicked:
		return OutcomePanic
	case err == nil:
		return OutcomeOk
	case IsCancellationError(err):
		return OutcomeCanceled
	default:
		return OutcomeErr
	}
}

var outcomeCounters = map[Outcome]metricz.Key{
	OutcomeOk:       OkTotal,
	OutcomeErr:      ErrTotal,
	OutcomePanic:    PanicsTotal,
	OutcomeCanceled: CanceledTotal,
}

// SettleEvent is emitted via hookz every time an observed computation settles.
type SettleEvent struct {
	ID        uuid.UUID     // Future ID
	Outcome   Outcome       // How it settled
	Error     error         // Failure, nil for OutcomeOk
	Duration  time.Duration // From start to settlement
	Timestamp time.Time     // When it settled
}

type option struct {
	clock clockz.Clock
}

// Option is option for [NewObserver].
type Option func(*option)

// WithClock sets the clock used for timestamps and durations.
func WithClock(clock clockz.Clock) Option {
	return func(o *option) {
		o.clock = clock
	}
}

// Observer records metrics, spans and events for asynchronous computations.
// Attach it to a context with WithObserver. A nil *Observer records nothing.
//
// Metrics:
//   - trycatch.settled.total: every settlement
//   - trycatch.ok.total, trycatch.err.total, trycatch.panics.total,
//     trycatch.canceled.total: settlements per outcome
//
// Traces:
//   - trycatch.settle: one span per computation, tagged with its ID and outcome
//
// Events (via hooks):
//   - trycatch.settled: SettleEvent for every settlement
type Observer struct {
	clock   clockz.Clock
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[SettleEvent]
}

// NewObserver returns an Observer with all counters registered.
func NewObserver(opts ...Option) *Observer {
	o := &option{clock: clockz.RealClock}
	for _, opt := range opts {
		opt(o)
	}
	if o.clock == nil {
		o.clock = clockz.RealClock
	}

	metrics := metricz.New()
	metrics.Counter(SettledTotal)
	for _, key := range outcomeCounters {
		metrics.Counter(key)
	}

	return &Observer{
		clock:   o.clock,
		metrics: metrics,
		tracer:  tracez.New(),
		hooks:   hookz.New[SettleEvent](),
	}
}

// begin starts observing the computation id. The returned function must be
// called once with its failure when it settles.
func (o *Observer) begin(ctx context.Context, id uuid.UUID) (context.Context, func(err error, panicked bool)) {
	if o == nil {
		return ctx, func(error, bool) {}
	}

	start := o.clock.Now()
	ctx, span := o.tracer.StartSpan(ctx, SettleSpan)
	span.SetTag(TagID, id.String())

	return ctx, func(err error, panicked bool) {
		outcome := outcomeOf(err, panicked)

		o.metrics.Counter(SettledTotal).Inc()
		o.metrics.Counter(outcomeCounters[outcome]).Inc()

		span.SetTag(TagOutcome, string(outcome))
		if err != nil {
			span.SetTag(TagError, err.Error())
		}
		span.Finish()

		event := SettleEvent{
			ID:        id,
			Outcome:   outcome,
			Error:     err,
			Duration:  o.clock.Since(start),
			Timestamp: o.clock.Now(),
		}
		if emitErr := o.hooks.Emit(ctx, EventSettled, event); emitErr != nil {
			log.Warnw("failed to emit settle event", "id", id, "error", emitErr)
		}
	}
}

// OnSettled registers a handler for settlements. Handlers run asynchronously.
func (o *Observer) OnSettled(handler func(context.Context, SettleEvent) error) error {
	if o == nil {
		return nil
	}
	_, err := o.hooks.Hook(EventSettled, handler)
	return err
}

// Metrics returns the metrics registry of this observer.
func (o *Observer) Metrics() *metricz.Registry {
	if o == nil {
		return nil
	}
	return o.metrics
}

// Tracer returns the tracer of this observer.
func (o *Observer) Tracer() *tracez.Tracer {
	if o == nil {
		return nil
	}
	return o.tracer
}

// Close shuts down the tracer and the hooks.
func (o *Observer) Close() error {
	if o == nil {
		return nil
	}
	if o.tracer != nil {
		o.tracer.Close()
	}
	o.hooks.Close()
	return nil
}
