package orders

import (
	"context"

	"github.com/smlogitech/backoffice/pkg/db/models"
	"gorm.io/gorm"
)

// Filter is the conjunction of persisted-column conditions for a range
// query. Derived-status selection happens after classification, in the
// service, because status is computed rather than stored.
type Filter struct {
	DateFrom       string
	DateTo         string
	ClientName     string
	DriverName     string
	ClientMonthEnd bool
	DriverMonthEnd bool
}

// Repository is the persistent order collection.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.Order) error
	Get(ctx context.Context, id int64) (*models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	PatchFields(ctx context.Context, id int64, fields map[string]string) error
	Delete(ctx context.Context, id int64) error
	Query(ctx context.Context, filter Filter) ([]models.Order, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an order repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *repository) Get(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) Update(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *repository) PatchFields(ctx context.Context, id int64, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	updates := make(map[string]any, len(fields))
	for name, value := range fields {
		updates[name] = value
	}
	res := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Order{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Query(ctx context.Context, filter Filter) ([]models.Order, error) {
	q := r.db.WithContext(ctx).Model(&models.Order{})

	if filter.DateFrom != "" {
		q = q.Where("order_date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q = q.Where("order_date <= ?", filter.DateTo)
	}
	if filter.ClientName != "" {
		q = q.Where("client_name LIKE ?", "%"+filter.ClientName+"%")
	}
	if filter.DriverName != "" {
		q = q.Where("driver_name LIKE ?", "%"+filter.DriverName+"%")
	}
	if filter.ClientMonthEnd {
		q = q.Where("client_month_end = ?", CheckOn)
	}
	if filter.DriverMonthEnd {
		q = q.Where("driver_month_end = ?", CheckOn)
	}

	var results []models.Order
	if err := q.Order("id DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
