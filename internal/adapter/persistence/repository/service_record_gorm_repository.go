package repository

import (
	"context"
	"errors"

	"oscell/internal/domain/entities"
	"oscell/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// ServiceRecordGormRepository persists the service ledger in a SQL database,
// one row per record, scoped by the collection column.
type ServiceRecordGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IServiceRecordRepository = (*ServiceRecordGormRepository)(nil)

func NewServiceRecordGormRepository(db *gorm.DB) *ServiceRecordGormRepository {
	return &ServiceRecordGormRepository{db: db}
}

func (r *ServiceRecordGormRepository) Create(ctx context.Context, collection string, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	m := toServiceRecordModel(collection, rec)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.ServiceRecord{}, err
	}
	return rec, nil
}

func (r *ServiceRecordGormRepository) GetByID(ctx context.Context, collection, id string) (entities.ServiceRecord, error) {
	var m ServiceRecordModel
	err := r.db.WithContext(ctx).Where("collection = ? AND id = ?", collection, id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ServiceRecord{}, nil
	}
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	return fromServiceRecordModel(m), nil
}

func (r *ServiceRecordGormRepository) Update(ctx context.Context, collection string, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	m := toServiceRecordModel(collection, rec)
	res := r.db.WithContext(ctx).
		Model(&ServiceRecordModel{}).
		Where("collection = ? AND id = ?", collection, rec.ID).
		Updates(map[string]any{
			"date":           m.Date,
			"client_name":    m.ClientName,
			"device_name":    m.DeviceName,
			"service_type":   m.ServiceType,
			"parts_cost":     m.PartsCost,
			"charged_amount": m.ChargedAmount,
			"profit":         m.Profit,
			"time_taken":     m.TimeTaken,
			"updated_at":     m.UpdatedAt,
		})
	if res.Error != nil {
		return entities.ServiceRecord{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ServiceRecord{}, nil
	}
	return r.GetByID(ctx, collection, rec.ID)
}

func (r *ServiceRecordGormRepository) Delete(ctx context.Context, collection, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Delete(&ServiceRecordModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ServiceRecordGormRepository) ListByCollection(ctx context.Context, collection string) ([]entities.ServiceRecord, error) {
	var rows []ServiceRecordModel
	err := r.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]entities.ServiceRecord, 0, len(rows))
	for _, m := range rows {
		records = append(records, fromServiceRecordModel(m))
	}
	return records, nil
}

func toServiceRecordModel(collection string, r entities.ServiceRecord) ServiceRecordModel {
	return ServiceRecordModel{
		ID:            r.ID,
		Collection:    collection,
		Subject:       r.Subject,
		Date:          r.Date,
		ClientName:    r.ClientName,
		DeviceName:    r.DeviceName,
		ServiceType:   r.ServiceType,
		PartsCost:     r.PartsCost.String(),
		ChargedAmount: r.ChargedAmount.String(),
		Profit:        r.Profit.String(),
		TimeTaken:     r.TimeTaken,
		CreatedAt:     r.CreatedAt.UTC(),
		UpdatedAt:     r.UpdatedAt.UTC(),
	}
}

func fromServiceRecordModel(m ServiceRecordModel) entities.ServiceRecord {
	return entities.ServiceRecord{
		ID:            m.ID,
		Subject:       m.Subject,
		Date:          m.Date,
		ClientName:    m.ClientName,
		DeviceName:    m.DeviceName,
		ServiceType:   m.ServiceType,
		PartsCost:     parseDecimal(m.PartsCost),
		ChargedAmount: parseDecimal(m.ChargedAmount),
		Profit:        parseDecimal(m.Profit),
		TimeTaken:     m.TimeTaken,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
