package entities

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

var (
	ErrDraftNumberRequired = errors.New("work order number is required")
	ErrDraftInvalidValue   = errors.New("invalid service value")
	ErrDraftInvalidDate    = errors.New("invalid work order date")
)

// WorkOrderDraft is the in-progress work order form, held by the caller.
//
// Number is free text: it starts as the allocator suggestion but staff may
// override it, and whatever is printed is what gets committed.
type WorkOrderDraft struct {
	Number             string `json:"os_number"`
	Date               string `json:"date"`
	ClientName         string `json:"client_name"`
	ClientPhone        string `json:"client_phone"`
	DeviceName         string `json:"device_name"`
	ProblemReported    string `json:"problem_reported"`
	ServiceDescription string `json:"service_description"`
	ServiceValue       string `json:"service_value"`
	TechnicianName     string `json:"technician_name"`
}

// NewWorkOrderDraft returns a blank draft dated today.
func NewWorkOrderDraft(number int64, today time.Time, technician string) WorkOrderDraft {
	return WorkOrderDraft{
		Number:         strconv.FormatInt(number, 10),
		Date:           today.Format(DateLayout),
		TechnicianName: technician,
	}
}

// ServiceAmount parses ServiceValue; blank is zero.
func (d WorkOrderDraft) ServiceAmount() (decimal.Decimal, error) {
	v, err := ParseAmount(d.ServiceValue)
	if err != nil {
		return decimal.Zero, ErrDraftInvalidValue
	}
	return v, nil
}

// TotalValue sums the billable lines of the order. There is a single line
// (the service) today.
func (d WorkOrderDraft) TotalValue() decimal.Decimal {
	v, err := d.ServiceAmount()
	if err != nil {
		return decimal.Zero
	}
	return v
}

// TrimmedNumber is the number as it will be printed and committed.
func (d WorkOrderDraft) TrimmedNumber() string {
	return strings.TrimSpace(d.Number)
}

// Validate checks the fields that would otherwise produce a broken document.
func (d WorkOrderDraft) Validate() error {
	if d.TrimmedNumber() == "" {
		return ErrDraftNumberRequired
	}
	if _, err := time.Parse(DateLayout, strings.TrimSpace(d.Date)); err != nil {
		return ErrDraftInvalidDate
	}
	if _, err := d.ServiceAmount(); err != nil {
		return err
	}
	return nil
}

// Reset clears the form after a successful emission. The technician stays
// because the same person usually issues the next order too.
func (d WorkOrderDraft) Reset(nextNumber int64, today time.Time) WorkOrderDraft {
	return NewWorkOrderDraft(nextNumber, today, d.TechnicianName)
}
