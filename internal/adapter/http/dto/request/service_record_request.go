package request

import (
	"errors"
	"fmt"
	"strings"

	"oscell/internal/domain/entities"
)

var (
	ErrInvalidAmountField = errors.New("invalid amount field")
)

// ServiceRecordRequest is the ledger form. DateShortcut ("today" or
// "yesterday") is only consulted when Date is blank.
type ServiceRecordRequest struct {
	Date          string         `json:"date"`
	DateShortcut  string         `json:"date_shortcut"`
	ClientName    string         `json:"client_name"`
	DeviceName    string         `json:"device_name"`
	ServiceType   string         `json:"service_type"`
	PartsCost     FlexibleString `json:"parts_cost"`
	ChargedAmount FlexibleString `json:"charged_amount"`
	TimeTaken     string         `json:"time_taken"`
}

func (r ServiceRecordRequest) NeedsDateShortcut() bool {
	return strings.TrimSpace(r.Date) == "" && strings.TrimSpace(r.DateShortcut) != ""
}

func (r ServiceRecordRequest) ToFields() (entities.ServiceRecordFields, error) {
	parts, err := entities.ParseAmount(r.PartsCost.String())
	if err != nil {
		return entities.ServiceRecordFields{}, fmt.Errorf("%w: parts_cost", ErrInvalidAmountField)
	}
	charged, err := entities.ParseAmount(r.ChargedAmount.String())
	if err != nil {
		return entities.ServiceRecordFields{}, fmt.Errorf("%w: charged_amount", ErrInvalidAmountField)
	}
	return entities.ServiceRecordFields{
		Date:          strings.TrimSpace(r.Date),
		ClientName:    r.ClientName,
		DeviceName:    r.DeviceName,
		ServiceType:   r.ServiceType,
		PartsCost:     parts,
		ChargedAmount: charged,
		TimeTaken:     r.TimeTaken,
	}, nil
}
