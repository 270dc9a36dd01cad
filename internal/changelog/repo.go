package changelog

import (
	"context"

	"github.com/smlogitech/backoffice/pkg/db/models"
	"github.com/smlogitech/backoffice/pkg/enums"
	"gorm.io/gorm"
)

// Repository is the append-only mutation journal. Appends are expected to
// run on the same transaction as the mutation they record so that partial
// failures leave neither phantom nor missing entries.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Append(ctx context.Context, orderID int64, action enums.ChangeAction, detail string) error
	ForOrder(ctx context.Context, orderID int64) ([]models.ChangeLogEntry, error)
	Latest(ctx context.Context, limit int) ([]models.ChangeLogEntry, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a changelog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Append(ctx context.Context, orderID int64, action enums.ChangeAction, detail string) error {
	entry := models.ChangeLogEntry{
		OrderID: orderID,
		Action:  action,
		Detail:  detail,
	}
	return r.db.WithContext(ctx).Create(&entry).Error
}

func (r *repository) ForOrder(ctx context.Context, orderID int64) ([]models.ChangeLogEntry, error) {
	var entries []models.ChangeLogEntry
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repository) Latest(ctx context.Context, limit int) ([]models.ChangeLogEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []models.ChangeLogEntry
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
