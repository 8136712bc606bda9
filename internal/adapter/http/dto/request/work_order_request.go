package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"oscell/internal/domain/entities"
)

var (
	ErrInvalidScalar = errors.New("value must be a string or a number")
)

// FlexibleString accepts a JSON string or a JSON number. Forms send numeric
// fields either way depending on the input widget.
type FlexibleString string

func (s *FlexibleString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexibleString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return ErrInvalidScalar
	}
	*s = FlexibleString(n.String())
	return nil
}

func (s FlexibleString) String() string {
	return strings.TrimSpace(string(s))
}

// WorkOrderDraftRequest is the work order form as posted by the client.
type WorkOrderDraftRequest struct {
	Number             FlexibleString `json:"os_number"`
	Date               string         `json:"date"`
	ClientName         string         `json:"client_name"`
	ClientPhone        string         `json:"client_phone"`
	DeviceName         string         `json:"device_name"`
	ProblemReported    string         `json:"problem_reported"`
	ServiceDescription string         `json:"service_description"`
	ServiceValue       FlexibleString `json:"service_value"`
	TechnicianName     string         `json:"technician_name"`
}

// ToEntity keeps free-text fields as typed; only the number and the value
// are normalized from their JSON representation.
func (r WorkOrderDraftRequest) ToEntity() entities.WorkOrderDraft {
	return entities.WorkOrderDraft{
		Number:             r.Number.String(),
		Date:               strings.TrimSpace(r.Date),
		ClientName:         r.ClientName,
		ClientPhone:        r.ClientPhone,
		DeviceName:         r.DeviceName,
		ProblemReported:    r.ProblemReported,
		ServiceDescription: r.ServiceDescription,
		ServiceValue:       r.ServiceValue.String(),
		TechnicianName:     r.TechnicianName,
	}
}

type CommitWorkOrderRequest struct {
	UsedNumber FlexibleString `json:"used_number" binding:"required"`
}
