package response

import (
	"testing"
	"time"

	"oscell/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromCounter(t *testing.T) {
	now := time.Now().UTC()
	res := FromCounter(entities.WorkOrderCounter{Key: "k", LastIssuedNumber: 410, UpdatedAt: now})
	if res.LastIssuedNumber != 410 || res.NextNumber != 411 || res.Key != "k" {
		t.Fatalf("unexpected counter: %+v", res)
	}
	if !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
}

func TestFromWorkOrderDraft(t *testing.T) {
	res := FromWorkOrderDraft(entities.WorkOrderDraft{Number: "226", ServiceValue: "5"})
	if res.Number != "226" || res.TotalValue != "5.00" {
		t.Fatalf("unexpected draft: %+v", res)
	}

	res = FromWorkOrderDraft(entities.WorkOrderDraft{Number: "226"})
	if res.TotalValue != "0.00" {
		t.Fatalf("blank value must total zero, got %s", res.TotalValue)
	}
}

func TestFromServiceRecords(t *testing.T) {
	records := []entities.ServiceRecord{
		{
			ID:            "r-1",
			Date:          "2026-10-19",
			PartsCost:     decimal.RequireFromString("120"),
			ChargedAmount: decimal.RequireFromString("350.5"),
			Profit:        decimal.RequireFromString("230.5"),
		},
		{ID: "r-2", Profit: decimal.RequireFromString("-100")},
	}

	res := FromServiceRecords(records)
	if len(res) != 2 {
		t.Fatalf("expected 2 records, got %d", len(res))
	}
	if res[0].PartsCost != "120.00" || res[0].ChargedAmount != "350.50" || res[0].Profit != "230.50" {
		t.Fatalf("unexpected money: %+v", res[0])
	}
	if res[1].Profit != "-100.00" {
		t.Fatalf("unexpected profit: %s", res[1].Profit)
	}

	if got := FromServiceRecords(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestLedgerEvents(t *testing.T) {
	ev := NewSnapshotEvent([]entities.ServiceRecord{{ID: "r-1"}})
	if ev.Type != LedgerEventSnapshot || len(ev.Records) != 1 || ev.Error != "" {
		t.Fatalf("unexpected snapshot: %+v", ev)
	}
	ev = NewErrorEvent("boom")
	if ev.Type != LedgerEventError || ev.Error != "boom" || ev.Records != nil {
		t.Fatalf("unexpected error event: %+v", ev)
	}
}
