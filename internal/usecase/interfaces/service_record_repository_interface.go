package interfaces

import (
	"context"

	"oscell/internal/domain/entities"
)

// IServiceRecordRepository abstracts persistence of the service ledger.
//
// Every call is scoped by collection (entities.ServicesPath), which is how one
// subject's records stay invisible to another. Missing records are reported
// as zero values (empty ID) rather than errors, like the other repositories.

type IServiceRecordRepository interface {
	Create(ctx context.Context, collection string, r entities.ServiceRecord) (entities.ServiceRecord, error)
	GetByID(ctx context.Context, collection, id string) (entities.ServiceRecord, error)
	Update(ctx context.Context, collection string, r entities.ServiceRecord) (entities.ServiceRecord, error)
	Delete(ctx context.Context, collection, id string) (bool, error)
	ListByCollection(ctx context.Context, collection string) ([]entities.ServiceRecord, error)
}
