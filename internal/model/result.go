package model

// Result carries the outcome of a read that may have fallen back to a safe default.
// Callers decide whether to surface the degraded notice.
type Result[T any] struct {
	Data     T
	Degraded bool
	Reason   string
}

func OK[T any](data T) Result[T] {
	return Result[T]{Data: data}
}

func Degrade[T any](fallback T, reason string) Result[T] {
	return Result[T]{Data: fallback, Degraded: true, Reason: reason}
}
