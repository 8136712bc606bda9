package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceRecord is one completed repair in the service ledger.
//
// Storage model:
//   - DynamoDB: table services, PK collection (ServicesPath), SK id
//   - SQL: table service_records, PK id, indexed by collection
//
// Monetary representation:
//   - Profit is always ChargedAmount - PartsCost, computed on every write.
//     It may be negative; no clamping.
type ServiceRecord struct {
	ID            string          `json:"id"`
	Subject       string          `json:"subject"`
	Date          string          `json:"date"`
	ClientName    string          `json:"client_name"`
	DeviceName    string          `json:"device_name"`
	ServiceType   string          `json:"service_type"`
	PartsCost     decimal.Decimal `json:"parts_cost"`
	ChargedAmount decimal.Decimal `json:"charged_amount"`
	Profit        decimal.Decimal `json:"profit"`
	TimeTaken     string          `json:"time_taken"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ServiceRecordFields is the editable part of a ServiceRecord.
type ServiceRecordFields struct {
	Date          string
	ClientName    string
	DeviceName    string
	ServiceType   string
	PartsCost     decimal.Decimal
	ChargedAmount decimal.Decimal
	TimeTaken     string
}

func ComputeProfit(partsCost, chargedAmount decimal.Decimal) decimal.Decimal {
	return chargedAmount.Sub(partsCost)
}

// ParsedDate returns the record date; unparsable dates sort last.
func (r ServiceRecord) ParsedDate() time.Time {
	t, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
