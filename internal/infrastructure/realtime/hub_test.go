package realtime

import (
	"errors"
	"sync"
	"testing"

	"oscell/internal/domain/entities"
	"oscell/internal/usecase/interfaces"
)

func TestHub_PublishReachesOnlyItsCollection(t *testing.T) {
	h := NewHub()
	var mine, theirs int
	h.Subscribe("a", interfaces.RecordListener{OnChange: func(r []entities.ServiceRecord) { mine += len(r) }})
	h.Subscribe("b", interfaces.RecordListener{OnChange: func(r []entities.ServiceRecord) { theirs += len(r) }})

	h.Publish("a", []entities.ServiceRecord{{ID: "1"}, {ID: "2"}})

	if mine != 2 || theirs != 0 {
		t.Fatalf("unexpected deliveries mine=%d theirs=%d", mine, theirs)
	}
}

func TestHub_UnsubscribeStopsDelivery(t *testing.T) {
	h := NewHub()
	calls := 0
	unsubscribe := h.Subscribe("a", interfaces.RecordListener{OnChange: func([]entities.ServiceRecord) { calls++ }})

	h.Publish("a", nil)
	unsubscribe()
	unsubscribe()
	h.Publish("a", nil)

	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if n := h.Subscribers("a"); n != 0 {
		t.Fatalf("expected no subscribers, got %d", n)
	}
}

func TestHub_PublishError(t *testing.T) {
	h := NewHub()
	var got error
	h.Subscribe("a", interfaces.RecordListener{OnError: func(err error) { got = err }})

	want := errors.New("boom")
	h.PublishError("a", want)
	if !errors.Is(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestHub_ConcurrentSubscribeAndPublish(t *testing.T) {
	h := NewHub()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			cancel := h.Subscribe("a", interfaces.RecordListener{OnChange: func([]entities.ServiceRecord) {}})
			cancel()
		}()
		go func() {
			defer wg.Done()
			h.Publish("a", nil)
		}()
	}
	wg.Wait()
	if n := h.Subscribers("a"); n != 0 {
		t.Fatalf("expected no subscribers, got %d", n)
	}
}
