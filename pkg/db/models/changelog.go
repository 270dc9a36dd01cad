package models

import (
	"time"

	"github.com/smlogitech/backoffice/pkg/enums"
)

// ChangeLogEntry is one immutable row of the append-only journal. Entries
// are written in the same transaction as the mutation they describe.
// Timestamps are stored UTC and rendered KST by the display layer.
type ChangeLogEntry struct {
	ID      int64              `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID int64              `gorm:"column:order_id;not null;index:changelog_order_idx" json:"order_id"`
	Action  enums.ChangeAction `gorm:"column:action;type:text;not null" json:"action"`
	Detail  string             `gorm:"column:detail;type:text;not null;default:''" json:"detail"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName pins the legacy table name.
func (ChangeLogEntry) TableName() string { return "changelog" }
