package interfaces

import "oscell/internal/domain/entities"

// RecordListener receives the full, already sorted record list of a
// collection on every change, or the error that prevented loading it.
type RecordListener struct {
	OnChange func(records []entities.ServiceRecord)
	OnError  func(err error)
}

// IRecordBroker fans ledger changes out to live subscribers.
type IRecordBroker interface {
	Subscribe(collection string, l RecordListener) (unsubscribe func())
	Publish(collection string, records []entities.ServiceRecord)
	PublishError(collection string, err error)
}
