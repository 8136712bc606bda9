package repository

import "time"

// CounterModel is the SQL row of a work order counter.
type CounterModel struct {
	Path             string    `gorm:"primaryKey;size:255"`
	LastIssuedNumber int64     `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime:false"`
}

func (CounterModel) TableName() string { return "work_order_counters" }

// ServiceRecordModel is the SQL row of a ledger entry. Amounts are decimal
// strings, as in DynamoDB.
type ServiceRecordModel struct {
	ID            string    `gorm:"primaryKey;size:36"`
	Collection    string    `gorm:"size:255;not null;index"`
	Subject       string    `gorm:"size:64;not null"`
	Date          string    `gorm:"size:10;not null"`
	ClientName    string    `gorm:"size:255"`
	DeviceName    string    `gorm:"size:255"`
	ServiceType   string    `gorm:"size:255"`
	PartsCost     string    `gorm:"size:32;not null;default:0"`
	ChargedAmount string    `gorm:"size:32;not null;default:0"`
	Profit        string    `gorm:"size:32;not null;default:0"`
	TimeTaken     string    `gorm:"size:64"`
	CreatedAt     time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false"`
}

func (ServiceRecordModel) TableName() string { return "service_records" }

// Models lists every table for AutoMigrate.
func Models() []any {
	return []any{&CounterModel{}, &ServiceRecordModel{}}
}
