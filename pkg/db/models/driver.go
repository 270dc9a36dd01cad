package models

import "time"

// Driver is one truck operator in the master table. The natural key is the
// {name, vehicle number} pair; an order save upserts the pair when both
// fields are present.
type Driver struct {
	ID            int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name          string `gorm:"column:name;type:text;not null;uniqueIndex:drivers_name_vehicle_key" json:"name"`
	VehicleNo     string `gorm:"column:vehicle_no;type:text;not null;uniqueIndex:drivers_name_vehicle_key" json:"vehicle_no"`
	Contact       string `gorm:"column:contact;type:text;not null;default:''" json:"contact"`
	Account       string `gorm:"column:account;type:text;not null;default:''" json:"account"`
	BizNo         string `gorm:"column:bizno;type:text;not null;default:''" json:"bizno"`
	Bank          string `gorm:"column:bank;type:text;not null;default:''" json:"bank"`
	AccountHolder string `gorm:"column:account_holder;type:text;not null;default:''" json:"account_holder"`
	Memo          string `gorm:"column:memo;type:text;not null;default:''" json:"memo"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName pins the legacy table name.
func (Driver) TableName() string { return "drivers" }
