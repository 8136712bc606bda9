package response

import (
	"time"

	"oscell/internal/domain/entities"
)

type WorkOrderDraftResponse struct {
	Number             string `json:"os_number"`
	Date               string `json:"date"`
	ClientName         string `json:"client_name"`
	ClientPhone        string `json:"client_phone"`
	DeviceName         string `json:"device_name"`
	ProblemReported    string `json:"problem_reported"`
	ServiceDescription string `json:"service_description"`
	ServiceValue       string `json:"service_value"`
	TechnicianName     string `json:"technician_name"`
	TotalValue         string `json:"total_value"`
}

func FromWorkOrderDraft(d entities.WorkOrderDraft) WorkOrderDraftResponse {
	return WorkOrderDraftResponse{
		Number:             d.Number,
		Date:               d.Date,
		ClientName:         d.ClientName,
		ClientPhone:        d.ClientPhone,
		DeviceName:         d.DeviceName,
		ProblemReported:    d.ProblemReported,
		ServiceDescription: d.ServiceDescription,
		ServiceValue:       d.ServiceValue,
		TechnicianName:     d.TechnicianName,
		TotalValue:         d.TotalValue().StringFixed(2),
	}
}

type CounterResponse struct {
	Key              string    `json:"key"`
	LastIssuedNumber int64     `json:"last_issued_number"`
	NextNumber       int64     `json:"next_number"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromCounter(c entities.WorkOrderCounter) CounterResponse {
	return CounterResponse{
		Key:              c.Key,
		LastIssuedNumber: c.LastIssuedNumber,
		NextNumber:       c.NextNumber(),
		UpdatedAt:        c.UpdatedAt,
	}
}

type NextNumberResponse struct {
	NextNumber int64 `json:"next_number"`
}
