package interfaces

import (
	"context"

	"oscell/internal/domain/entities"
)

// ICounterRepository abstracts persistence of the work order counter.
//
// Implementations must make Advance an atomic advance-if-greater:
//   - absent counter: create it with n
//   - n > last: store n
//   - n <= last: leave it untouched and return the stored counter
//
// An absent counter is reported as a zero value with an empty Key.

type ICounterRepository interface {
	Get(ctx context.Context, key string) (entities.WorkOrderCounter, error)
	InitIfAbsent(ctx context.Context, key string, seed int64) (entities.WorkOrderCounter, error)
	Advance(ctx context.Context, key string, n int64) (entities.WorkOrderCounter, error)
}
