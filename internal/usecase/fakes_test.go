package usecase

import (
	"context"
	"sync"
	"time"

	"oscell/internal/domain/entities"
)

// memoryCounterRepo is an in-memory ICounterRepository with the same
// advance-if-greater contract as the real stores.
type memoryCounterRepo struct {
	mu       sync.Mutex
	counters map[string]entities.WorkOrderCounter
}

func newMemoryCounterRepo() *memoryCounterRepo {
	return &memoryCounterRepo{counters: map[string]entities.WorkOrderCounter{}}
}

func (r *memoryCounterRepo) Get(_ context.Context, key string) (entities.WorkOrderCounter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counters[key], nil
}

func (r *memoryCounterRepo) InitIfAbsent(_ context.Context, key string, seed int64) (entities.WorkOrderCounter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.counters[key]; ok {
		return c, nil
	}
	c := entities.WorkOrderCounter{Key: key, LastIssuedNumber: seed, UpdatedAt: time.Now().UTC()}
	r.counters[key] = c
	return c, nil
}

func (r *memoryCounterRepo) Advance(_ context.Context, key string, n int64) (entities.WorkOrderCounter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.counters[key]
	if !ok || n > c.LastIssuedNumber {
		c = entities.WorkOrderCounter{Key: key, LastIssuedNumber: n, UpdatedAt: time.Now().UTC()}
		r.counters[key] = c
	}
	return c, nil
}

// memoryRecordRepo is an in-memory IServiceRecordRepository. afterList runs
// once a listing has been copied and before it is returned; afterCreate runs
// once a record is stored.
type memoryRecordRepo struct {
	mu          sync.Mutex
	records     map[string][]entities.ServiceRecord
	afterList   func(call int)
	afterCreate func()
	lists       int
}

func newMemoryRecordRepo() *memoryRecordRepo {
	return &memoryRecordRepo{records: map[string][]entities.ServiceRecord{}}
}

func (r *memoryRecordRepo) Create(_ context.Context, collection string, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	r.mu.Lock()
	r.records[collection] = append(r.records[collection], rec)
	hook := r.afterCreate
	r.mu.Unlock()
	if hook != nil {
		hook()
	}
	return rec, nil
}

func (r *memoryRecordRepo) GetByID(_ context.Context, collection, id string) (entities.ServiceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records[collection] {
		if rec.ID == id {
			return rec, nil
		}
	}
	return entities.ServiceRecord{}, nil
}

func (r *memoryRecordRepo) Update(_ context.Context, collection string, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.records[collection] {
		if existing.ID == rec.ID {
			r.records[collection][i] = rec
			return rec, nil
		}
	}
	return entities.ServiceRecord{}, nil
}

func (r *memoryRecordRepo) Delete(_ context.Context, collection, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.records[collection] {
		if existing.ID == id {
			r.records[collection] = append(r.records[collection][:i], r.records[collection][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRecordRepo) ListByCollection(_ context.Context, collection string) ([]entities.ServiceRecord, error) {
	r.mu.Lock()
	out := append([]entities.ServiceRecord(nil), r.records[collection]...)
	r.lists++
	call := r.lists
	hook := r.afterList
	r.mu.Unlock()
	if hook != nil {
		hook(call)
	}
	return out, nil
}
