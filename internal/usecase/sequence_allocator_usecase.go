package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"oscell/internal/domain/entities"
	"oscell/internal/usecase/interfaces"
)

// MaxWorkOrderNumber is the largest number accepted on commit. It keeps the
// next suggestion exact for JSON clients that read numbers as doubles.
const MaxWorkOrderNumber int64 = 1<<53 - 2

var (
	ErrStorage                = errors.New("storage error")
	ErrInvalidWorkOrderNumber = errors.New("invalid work order number")
)

// ISequenceAllocatorUseCase hands out work order (O.S.) numbers.
//
// The counter stores the last number actually printed. A suggestion is only a
// hint: nothing is reserved until Commit, so two open forms may suggest the
// same number. Commit is advance-if-greater, so out-of-order or repeated
// commits never move the counter backwards.
type ISequenceAllocatorUseCase interface {
	SuggestNextNumber(ctx context.Context) (int64, error)
	Commit(ctx context.Context, used string) (entities.WorkOrderCounter, error)
	Current(ctx context.Context) (entities.WorkOrderCounter, error)
}

type SequenceAllocatorUseCase struct {
	repo interfaces.ICounterRepository
	key  string
	seed int64
}

var _ ISequenceAllocatorUseCase = (*SequenceAllocatorUseCase)(nil)

func NewSequenceAllocatorUseCase(repo interfaces.ICounterRepository, installationID string, seed int64) *SequenceAllocatorUseCase {
	return &SequenceAllocatorUseCase{
		repo: repo,
		key:  entities.CounterPath(installationID),
		seed: seed,
	}
}

func (u *SequenceAllocatorUseCase) SuggestNextNumber(ctx context.Context) (int64, error) {
	c, err := u.load(ctx)
	if err != nil {
		return 0, err
	}
	return c.NextNumber(), nil
}

// Current returns the stored counter, creating it from the seed on first use.
func (u *SequenceAllocatorUseCase) Current(ctx context.Context) (entities.WorkOrderCounter, error) {
	return u.load(ctx)
}

func (u *SequenceAllocatorUseCase) Commit(ctx context.Context, used string) (entities.WorkOrderCounter, error) {
	n, err := ParseWorkOrderNumber(used)
	if err != nil {
		log.Printf("[sequence][usecase] commit rejected used=%q", used)
		return entities.WorkOrderCounter{}, err
	}

	c, err := u.repo.Advance(ctx, u.key, n)
	if err != nil {
		log.Printf("[sequence][usecase] commit failed key=%s used=%d err=%v", u.key, n, err)
		return entities.WorkOrderCounter{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	log.Printf("[sequence][usecase] commit used=%d last=%d", n, c.LastIssuedNumber)
	return c, nil
}

func (u *SequenceAllocatorUseCase) load(ctx context.Context) (entities.WorkOrderCounter, error) {
	c, err := u.repo.Get(ctx, u.key)
	if err != nil {
		log.Printf("[sequence][usecase] get failed key=%s err=%v", u.key, err)
		return entities.WorkOrderCounter{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if c.Key != "" {
		return c, nil
	}

	c, err = u.repo.InitIfAbsent(ctx, u.key, u.seed)
	if err != nil {
		log.Printf("[sequence][usecase] init failed key=%s seed=%d err=%v", u.key, u.seed, err)
		return entities.WorkOrderCounter{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	log.Printf("[sequence][usecase] counter initialized key=%s last=%d", u.key, c.LastIssuedNumber)
	return c, nil
}

// ParseWorkOrderNumber reads a printed work order number. Only plain
// integers in [0, MaxWorkOrderNumber] are accepted.
func ParseWorkOrderNumber(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "+") {
		return 0, ErrInvalidWorkOrderNumber
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 || n > MaxWorkOrderNumber {
		return 0, ErrInvalidWorkOrderNumber
	}
	return n, nil
}
