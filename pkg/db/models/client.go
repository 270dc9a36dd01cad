package models

import "time"

// Client is one shipper company in the master table, keyed by company name.
type Client struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"column:name;type:text;not null;uniqueIndex:clients_name_key" json:"name"`
	Contact string `gorm:"column:contact;type:text;not null;default:''" json:"contact"`
	BizNo   string `gorm:"column:bizno;type:text;not null;default:''" json:"bizno"`
	Address string `gorm:"column:address;type:text;not null;default:''" json:"address"`
	Email   string `gorm:"column:email;type:text;not null;default:''" json:"email"`
	Memo    string `gorm:"column:memo;type:text;not null;default:''" json:"memo"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName pins the legacy table name.
func (Client) TableName() string { return "clients" }
