package masterdata

import (
	"context"

	"github.com/smlogitech/backoffice/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository persists the client and driver master tables. Natural keys:
// clients by company name, drivers by the {name, vehicle number} pair.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	ListClients(ctx context.Context) ([]models.Client, error)
	UpsertClient(ctx context.Context, client *models.Client) error
	DeleteClient(ctx context.Context, name string) error
	ReplaceClients(ctx context.Context, clients []models.Client) error

	ListDrivers(ctx context.Context) ([]models.Driver, error)
	UpsertDriver(ctx context.Context, driver *models.Driver) error
	EnsureDriver(ctx context.Context, driver *models.Driver) error
	DeleteDriver(ctx context.Context, id int64) error
	ReplaceDrivers(ctx context.Context, drivers []models.Driver) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a master-data repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) ListClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *repository) UpsertClient(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"contact", "bizno", "address", "email", "memo", "updated_at",
			}),
		}).
		Create(client).Error
}

func (r *repository) DeleteClient(ctx context.Context, name string) error {
	res := r.db.WithContext(ctx).Where("name = ?", name).Delete(&models.Client{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ReplaceClients(ctx context.Context, clients []models.Client) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Client{}).Error; err != nil {
			return err
		}
		if len(clients) == 0 {
			return nil
		}
		return tx.Create(&clients).Error
	})
}

func (r *repository) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	var drivers []models.Driver
	if err := r.db.WithContext(ctx).Order("name ASC, vehicle_no ASC").Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

func (r *repository) UpsertDriver(ctx context.Context, driver *models.Driver) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}, {Name: "vehicle_no"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"contact", "account", "bizno", "bank", "account_holder", "memo", "updated_at",
			}),
		}).
		Create(driver).Error
}

// EnsureDriver inserts the pair when absent and leaves existing rows
// untouched; order saves enrich the master without overwriting curated
// entries.
func (r *repository) EnsureDriver(ctx context.Context, driver *models.Driver) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "vehicle_no"}},
			DoNothing: true,
		}).
		Create(driver).Error
}

func (r *repository) DeleteDriver(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Driver{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ReplaceDrivers(ctx context.Context, drivers []models.Driver) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Driver{}).Error; err != nil {
			return err
		}
		if len(drivers) == 0 {
			return nil
		}
		return tx.Create(&drivers).Error
	})
}
