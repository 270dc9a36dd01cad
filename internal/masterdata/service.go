package masterdata

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smlogitech/backoffice/pkg/db/models"
	pkgerrors "github.com/smlogitech/backoffice/pkg/errors"
	"gorm.io/gorm"
)

// Service manages the client and driver master tables and keeps the search
// snapshot in sync after every write.
type Service interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	SaveClient(ctx context.Context, client models.Client) error
	DeleteClient(ctx context.Context, name string) error
	ImportClients(ctx context.Context, clients []models.Client) (int, error)

	ListDrivers(ctx context.Context) ([]models.Driver, error)
	SaveDriver(ctx context.Context, driver models.Driver) error
	DeleteDriver(ctx context.Context, id int64) error
	ImportDrivers(ctx context.Context, drivers []models.Driver) (int, error)

	SearchClients(query string, limit int) []models.Client
	SearchDrivers(query string, limit int) []models.Driver
}

type service struct {
	repo  Repository
	cache *Cache
}

// NewService builds the master-data service.
func NewService(repo Repository, cache *Cache) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("master data repository required")
	}
	if cache == nil {
		return nil, fmt.Errorf("master data cache required")
	}
	return &service{repo: repo, cache: cache}, nil
}

func (s *service) ListClients(ctx context.Context) ([]models.Client, error) {
	clients, err := s.repo.ListClients(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list clients")
	}
	return clients, nil
}

func (s *service) SaveClient(ctx context.Context, client models.Client) error {
	client.Name = strings.TrimSpace(client.Name)
	if client.Name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "client name required")
	}
	if err := s.repo.UpsertClient(ctx, &client); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upsert client")
	}
	return s.refreshClients(ctx)
}

func (s *service) DeleteClient(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "client name required")
	}
	if err := s.repo.DeleteClient(ctx, name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "client not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete client")
	}
	return s.refreshClients(ctx)
}

// ImportClients replaces the whole client table with rows parsed from a
// spreadsheet upstream. Rows without a name are skipped, duplicate names
// keep the last occurrence.
func (s *service) ImportClients(ctx context.Context, clients []models.Client) (int, error) {
	deduped := dedupeClients(clients)
	if err := s.repo.ReplaceClients(ctx, deduped); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace clients")
	}
	if err := s.refreshClients(ctx); err != nil {
		return 0, err
	}
	return len(deduped), nil
}

func (s *service) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	drivers, err := s.repo.ListDrivers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list drivers")
	}
	return drivers, nil
}

func (s *service) SaveDriver(ctx context.Context, driver models.Driver) error {
	driver.Name = strings.TrimSpace(driver.Name)
	driver.VehicleNo = strings.TrimSpace(driver.VehicleNo)
	if driver.Name == "" || driver.VehicleNo == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "driver name and vehicle number required")
	}
	if err := s.repo.UpsertDriver(ctx, &driver); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upsert driver")
	}
	return s.refreshDrivers(ctx)
}

func (s *service) DeleteDriver(ctx context.Context, id int64) error {
	if err := s.repo.DeleteDriver(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "driver not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete driver")
	}
	return s.refreshDrivers(ctx)
}

// ImportDrivers replaces the whole driver table; see ImportClients.
func (s *service) ImportDrivers(ctx context.Context, drivers []models.Driver) (int, error) {
	deduped := dedupeDrivers(drivers)
	if err := s.repo.ReplaceDrivers(ctx, deduped); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace drivers")
	}
	if err := s.refreshDrivers(ctx); err != nil {
		return 0, err
	}
	return len(deduped), nil
}

func (s *service) SearchClients(query string, limit int) []models.Client {
	return s.cache.SearchClients(query, limit)
}

func (s *service) SearchDrivers(query string, limit int) []models.Driver {
	return s.cache.SearchDrivers(query, limit)
}

func (s *service) refreshClients(ctx context.Context) error {
	if err := s.cache.RefreshClients(ctx); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "refresh client snapshot")
	}
	return nil
}

func (s *service) refreshDrivers(ctx context.Context) error {
	if err := s.cache.RefreshDrivers(ctx); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "refresh driver snapshot")
	}
	return nil
}

func dedupeClients(clients []models.Client) []models.Client {
	seen := map[string]int{}
	out := make([]models.Client, 0, len(clients))
	for _, client := range clients {
		client.ID = 0
		client.Name = strings.TrimSpace(client.Name)
		if client.Name == "" {
			continue
		}
		if idx, ok := seen[client.Name]; ok {
			out[idx] = client
			continue
		}
		seen[client.Name] = len(out)
		out = append(out, client)
	}
	return out
}

func dedupeDrivers(drivers []models.Driver) []models.Driver {
	type key struct{ name, vehicle string }
	seen := map[key]int{}
	out := make([]models.Driver, 0, len(drivers))
	for _, driver := range drivers {
		driver.ID = 0
		driver.Name = strings.TrimSpace(driver.Name)
		driver.VehicleNo = strings.TrimSpace(driver.VehicleNo)
		if driver.Name == "" || driver.VehicleNo == "" {
			continue
		}
		k := key{driver.Name, driver.VehicleNo}
		if idx, ok := seen[k]; ok {
			out[idx] = driver
			continue
		}
		seen[k] = len(out)
		out = append(out, driver)
	}
	return out
}
