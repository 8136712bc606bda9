package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"oscell/internal/domain/entities"
	"oscell/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CounterGormRepository persists the work order counter in a SQL database.
//
// Advance is a single upsert whose update branch only takes the incoming
// number when it is greater, so the row never moves backwards even with
// concurrent writers.
type CounterGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICounterRepository = (*CounterGormRepository)(nil)

func NewCounterGormRepository(db *gorm.DB) *CounterGormRepository {
	return &CounterGormRepository{db: db}
}

func (r *CounterGormRepository) Get(ctx context.Context, key string) (entities.WorkOrderCounter, error) {
	var m CounterModel
	err := r.db.WithContext(ctx).Where("path = ?", key).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.WorkOrderCounter{}, nil
	}
	if err != nil {
		return entities.WorkOrderCounter{}, err
	}
	return fromCounterModel(m), nil
}

func (r *CounterGormRepository) InitIfAbsent(ctx context.Context, key string, seed int64) (entities.WorkOrderCounter, error) {
	m := CounterModel{Path: key, LastIssuedNumber: seed, UpdatedAt: time.Now().UTC()}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "path"}}, DoNothing: true}).
		Create(&m).Error
	if err != nil {
		return entities.WorkOrderCounter{}, err
	}
	return r.Get(ctx, key)
}

const advanceIfGreater = "CASE WHEN work_order_counters.last_issued_number < excluded.last_issued_number " +
	"THEN excluded.%[1]s ELSE work_order_counters.%[1]s END"

func (r *CounterGormRepository) Advance(ctx context.Context, key string, n int64) (entities.WorkOrderCounter, error) {
	m := CounterModel{Path: key, LastIssuedNumber: n, UpdatedAt: time.Now().UTC()}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "path"}},
			DoUpdates: clause.Assignments(map[string]any{
				"last_issued_number": gorm.Expr(fmtAdvance("last_issued_number")),
				"updated_at":         gorm.Expr(fmtAdvance("updated_at")),
			}),
		}).
		Create(&m).Error
	if err != nil {
		return entities.WorkOrderCounter{}, err
	}
	return r.Get(ctx, key)
}

func fmtAdvance(column string) string {
	return fmt.Sprintf(advanceIfGreater, column)
}

func fromCounterModel(m CounterModel) entities.WorkOrderCounter {
	return entities.WorkOrderCounter{
		Key:              m.Path,
		LastIssuedNumber: m.LastIssuedNumber,
		UpdatedAt:        m.UpdatedAt,
	}
}
