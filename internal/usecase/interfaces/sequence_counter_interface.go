package interfaces

import "context"

// ISequenceCounterRepository abstracts the shared atomic counter behind
// import-code sequence allocation. IncrementAndGet must be atomic across
// concurrent writers; SetValue is used when a caller supplies a sequence
// ahead of the counter's current value.
type ISequenceCounterRepository interface {
	CurrentValue(ctx context.Context, counterID string) (int, error)
	SetValue(ctx context.Context, counterID string, value int) error
	IncrementAndGet(ctx context.Context, counterID string) (int, error)
}
