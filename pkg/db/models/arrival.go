package models

import "time"

// ArrivalEntry backs the arrival-status board: one expected arrival the
// dispatchers are counting down to.
type ArrivalEntry struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	VehicleNo  string `gorm:"column:vehicle_no;type:text;not null;default:''" json:"vehicle_no"`
	DriverName string `gorm:"column:driver_name;type:text;not null;default:''" json:"driver_name"`
	Route      string `gorm:"column:route;type:text;not null;default:''" json:"route"`
	ExpectedAt string `gorm:"column:expected_at;type:text;not null;default:''" json:"expected_at"`
	Memo       string `gorm:"column:memo;type:text;not null;default:''" json:"memo"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName pins the legacy table name.
func (ArrivalEntry) TableName() string { return "arrival_board" }
