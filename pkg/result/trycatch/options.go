package trycatch

import "context"

type OptionKey string

const (
	LimitOptionKey    OptionKey = "limit_options"
	ObserverOptionKey OptionKey = "observer_options"
)

type LimitOptions struct {
	MaxCount int
}

// WithLimit bounds how many computations TryAll runs at the same time.
func WithLimit(ctx context.Context, maxCount int) context.Context {
	return context.WithValue(ctx, LimitOptionKey, LimitOptions{MaxCount: maxCount})
}

// Limit returns the limit set with WithLimit, or defaultMaxCount.
func Limit(ctx context.Context, defaultMaxCount int) int {
	options, ok := ctx.Value(LimitOptionKey).(LimitOptions)
	if ok && options.MaxCount > 0 {
		return options.MaxCount
	}
	return defaultMaxCount
}

// WithObserver attaches o to every asynchronous computation started with ctx.
func WithObserver(ctx context.Context, o *Observer) context.Context {
	return context.WithValue(ctx, ObserverOptionKey, o)
}

// ObserverFrom returns the Observer attached with WithObserver, or nil.
func ObserverFrom(ctx context.Context) *Observer {
	o, _ := ctx.Value(ObserverOptionKey).(*Observer)
	return o
}
