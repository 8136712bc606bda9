package entities

import (
	"errors"
	"testing"
	"time"
)

func TestWorkOrderDraft_NewAndReset(t *testing.T) {
	today := time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)
	d := NewWorkOrderDraft(226, today, "Jordan Cell")
	if d.Number != "226" || d.Date != "2026-10-19" || d.TechnicianName != "Jordan Cell" {
		t.Fatalf("unexpected draft: %+v", d)
	}

	d.ClientName = "Maria"
	d.ClientPhone = "11 99999-0000"
	d.DeviceName = "iPhone 13"
	d.ProblemReported = "tela quebrada"
	d.ServiceDescription = "troca de tela"
	d.ServiceValue = "150"
	d.TechnicianName = "Carlos"

	next := d.Reset(227, today.Add(24*time.Hour))
	want := WorkOrderDraft{Number: "227", Date: "2026-10-20", TechnicianName: "Carlos"}
	if next != want {
		t.Fatalf("unexpected reset draft: %+v", next)
	}
}

func TestWorkOrderDraft_TotalValue(t *testing.T) {
	d := WorkOrderDraft{ServiceValue: "150"}
	if d.TotalValue().StringFixed(2) != "150.00" {
		t.Fatalf("unexpected total: %s", d.TotalValue())
	}
	d.ServiceValue = ""
	if d.TotalValue().StringFixed(2) != "0.00" {
		t.Fatalf("unexpected total: %s", d.TotalValue())
	}
}

func TestWorkOrderDraft_Validate(t *testing.T) {
	valid := WorkOrderDraft{Number: " 226 ", Date: "2026-10-19", ServiceValue: "10"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valid.TrimmedNumber() != "226" {
		t.Fatalf("unexpected trimmed number %q", valid.TrimmedNumber())
	}

	cases := []struct {
		name  string
		draft WorkOrderDraft
		want  error
	}{
		{"blank number", WorkOrderDraft{Number: "  ", Date: "2026-10-19"}, ErrDraftNumberRequired},
		{"bad date", WorkOrderDraft{Number: "1", Date: "19/10/2026"}, ErrDraftInvalidDate},
		{"bad value", WorkOrderDraft{Number: "1", Date: "2026-10-19", ServiceValue: "abc"}, ErrDraftInvalidValue},
		{"negative value", WorkOrderDraft{Number: "1", Date: "2026-10-19", ServiceValue: "-5"}, ErrDraftInvalidValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.draft.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	if got := CounterPath("oscell"); got != "artifacts/oscell/public/data/os_settings/settings" {
		t.Fatalf("unexpected counter path %q", got)
	}
	if got := ServicesPath("oscell", "u-1"); got != "artifacts/oscell/users/u-1/services" {
		t.Fatalf("unexpected services path %q", got)
	}
}
