package response

import (
	"time"

	"oscell/internal/domain/entities"
)

const (
	LedgerEventSnapshot = "snapshot"
	LedgerEventError    = "error"
)

// ServiceRecordResponse carries money as fixed two-decimal strings so clients
// never see float rounding.
type ServiceRecordResponse struct {
	ID            string    `json:"id"`
	Date          string    `json:"date"`
	ClientName    string    `json:"client_name"`
	DeviceName    string    `json:"device_name"`
	ServiceType   string    `json:"service_type"`
	PartsCost     string    `json:"parts_cost"`
	ChargedAmount string    `json:"charged_amount"`
	Profit        string    `json:"profit"`
	TimeTaken     string    `json:"time_taken"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromServiceRecord(r entities.ServiceRecord) ServiceRecordResponse {
	return ServiceRecordResponse{
		ID:            r.ID,
		Date:          r.Date,
		ClientName:    r.ClientName,
		DeviceName:    r.DeviceName,
		ServiceType:   r.ServiceType,
		PartsCost:     r.PartsCost.StringFixed(2),
		ChargedAmount: r.ChargedAmount.StringFixed(2),
		Profit:        r.Profit.StringFixed(2),
		TimeTaken:     r.TimeTaken,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func FromServiceRecords(records []entities.ServiceRecord) []ServiceRecordResponse {
	out := make([]ServiceRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromServiceRecord(r))
	}
	return out
}

// LedgerEvent is one frame of the live ledger stream.
type LedgerEvent struct {
	Type    string                  `json:"type"`
	Records []ServiceRecordResponse `json:"records,omitempty"`
	Error   string                  `json:"error,omitempty"`
}

func NewSnapshotEvent(records []entities.ServiceRecord) LedgerEvent {
	return LedgerEvent{Type: LedgerEventSnapshot, Records: FromServiceRecords(records)}
}

func NewErrorEvent(message string) LedgerEvent {
	return LedgerEvent{Type: LedgerEventError, Error: message}
}

type DateShortcutResponse struct {
	Shortcut string `json:"shortcut"`
	Date     string `json:"date"`
}

type IdentityResponse struct {
	Subject   string    `json:"subject"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
