package entities

import (
	"fmt"
	"time"
)

// WorkOrderCounter is the per-installation work order (O.S.) sequence.
//
// Storage model:
//   - DynamoDB: table os_settings, PK path, attribute lastOsNumber
//   - SQL: table work_order_counters, PK path
//
// LastIssuedNumber only moves forward; commits use advance-if-greater.
type WorkOrderCounter struct {
	Key              string    `json:"key"`
	LastIssuedNumber int64     `json:"last_issued_number"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NextNumber is the number suggested for the next work order.
func (c WorkOrderCounter) NextNumber() int64 {
	return c.LastIssuedNumber + 1
}

// CounterPath is the document path of the installation-wide counter.
func CounterPath(installationID string) string {
	return fmt.Sprintf("artifacts/%s/public/data/os_settings/settings", installationID)
}

// ServicesPath is the collection path holding one subject's service records.
func ServicesPath(installationID, subject string) string {
	return fmt.Sprintf("artifacts/%s/users/%s/services", installationID, subject)
}
