package masterdata

import (
	"context"
	"testing"

	"github.com/smlogitech/backoffice/pkg/db/models"
	pkgerrors "github.com/smlogitech/backoffice/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupMasterTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	clients := `
CREATE TABLE IF NOT EXISTS clients (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  contact TEXT NOT NULL DEFAULT '',
  bizno TEXT NOT NULL DEFAULT '',
  address TEXT NOT NULL DEFAULT '',
  email TEXT NOT NULL DEFAULT '',
  memo TEXT NOT NULL DEFAULT '',
  created_at DATETIME,
  updated_at DATETIME
);`
	drivers := `
CREATE TABLE IF NOT EXISTS drivers (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  vehicle_no TEXT NOT NULL,
  contact TEXT NOT NULL DEFAULT '',
  account TEXT NOT NULL DEFAULT '',
  bizno TEXT NOT NULL DEFAULT '',
  bank TEXT NOT NULL DEFAULT '',
  account_holder TEXT NOT NULL DEFAULT '',
  memo TEXT NOT NULL DEFAULT '',
  created_at DATETIME,
  updated_at DATETIME,
  UNIQUE (name, vehicle_no)
);`
	require.NoError(t, db.Exec(clients).Error)
	require.NoError(t, db.Exec(drivers).Error)
	require.NoError(t, db.Exec(`DELETE FROM clients`).Error)
	require.NoError(t, db.Exec(`DELETE FROM drivers`).Error)
	return db
}

func newMasterService(t *testing.T, db *gorm.DB) (Service, *Cache) {
	t.Helper()

	repo := NewRepository(db)
	cache := NewCache(repo)
	require.NoError(t, cache.Warm(context.Background()))
	svc, err := NewService(repo, cache)
	require.NoError(t, err)
	return svc, cache
}

func TestSaveClientUpsertsAndRefreshes(t *testing.T) {
	db := setupMasterTestDB(t)
	svc, cache := newMasterService(t, db)
	ctx := context.Background()

	require.NoError(t, svc.SaveClient(ctx, models.Client{Name: " 한진물류 ", Contact: "02-1111-2222"}))

	found, ok := cache.FindClient("한진물류")
	require.True(t, ok)
	assert.Equal(t, "02-1111-2222", found.Contact)

	// same name updates in place
	require.NoError(t, svc.SaveClient(ctx, models.Client{Name: "한진물류", Contact: "02-3333-4444"}))

	clients, err := svc.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "02-3333-4444", clients[0].Contact)
}

func TestSaveClientRequiresName(t *testing.T) {
	db := setupMasterTestDB(t)
	svc, _ := newMasterService(t, db)

	err := svc.SaveClient(context.Background(), models.Client{Name: "  "})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestDeleteClient(t *testing.T) {
	db := setupMasterTestDB(t)
	svc, cache := newMasterService(t, db)
	ctx := context.Background()

	require.NoError(t, svc.SaveClient(ctx, models.Client{Name: "동방상사"}))
	require.NoError(t, svc.DeleteClient(ctx, "동방상사"))

	_, ok := cache.FindClient("동방상사")
	assert.False(t, ok)

	err := svc.DeleteClient(ctx, "동방상사")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestImportClientsReplacesTable(t *testing.T) {
	db := setupMasterTestDB(t)
	svc, cache := newMasterService(t, db)
	ctx := context.Background()

	require.NoError(t, svc.SaveClient(ctx, models.Client{Name: "사라질회사"}))

	count, err := svc.ImportClients(ctx, []models.Client{
		{Name: "한진물류", Contact: "old"},
		{Name: ""},
		{Name: "동방상사"},
		{Name: "한진물류", Contact: "new"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	clients, err := svc.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)

	// duplicate names keep the last occurrence
	found, ok := cache.FindClient("한진물류")
	require.True(t, ok)
	assert.Equal(t, "new", found.Contact)

	_, ok = cache.FindClient("사라질회사")
	assert.False(t, ok)
}

func TestSaveDriverRequiresPair(t *testing.T) {
	db := setupMasterTestDB(t)
	svc, _ := newMasterService(t, db)
	ctx := context.Background()

	err := svc.SaveDriver(ctx, models.Driver{Name: "김기사"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	err = svc.SaveDriver(ctx, models.Driver{VehicleNo: "88바1234"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestSaveDriverSameNameDifferentVehicle(t *testing.T) {
	db := setupMasterTestDB(t)
	svc, _ := newMasterService(t, db)
	ctx := context.Background()

	require.NoError(t, svc.SaveDriver(ctx, models.Driver{Name: "김기사", VehicleNo: "88바1234"}))
	require.NoError(t, svc.SaveDriver(ctx, models.Driver{Name: "김기사", VehicleNo: "77가5678"}))

	drivers, err := svc.ListDrivers(ctx)
	require.NoError(t, err)
	assert.Len(t, drivers, 2)
}

func TestImportDriversDedupesOnPair(t *testing.T) {
	db := setupMasterTestDB(t)
	svc, cache := newMasterService(t, db)

	count, err := svc.ImportDrivers(context.Background(), []models.Driver{
		{Name: "김기사", VehicleNo: "88바1234", Bank: "국민"},
		{Name: "김기사", VehicleNo: ""},
		{Name: "김기사", VehicleNo: "88바1234", Bank: "신한"},
		{Name: "박기사", VehicleNo: "77가5678"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	found, ok := cache.FindDriver("김기사", "88바1234")
	require.True(t, ok)
	assert.Equal(t, "신한", found.Bank)
}

func TestSearchUsesSnapshot(t *testing.T) {
	db := setupMasterTestDB(t)
	svc, _ := newMasterService(t, db)
	ctx := context.Background()

	require.NoError(t, svc.SaveClient(ctx, models.Client{Name: "한진물류"}))
	require.NoError(t, svc.SaveClient(ctx, models.Client{Name: "한성상사"}))
	require.NoError(t, svc.SaveClient(ctx, models.Client{Name: "동방상사"}))
	require.NoError(t, svc.SaveDriver(ctx, models.Driver{Name: "김기사", VehicleNo: "88바1234"}))

	matched := svc.SearchClients("한", 10)
	assert.Len(t, matched, 2)

	matched = svc.SearchClients("ㅎㅈ", 10)
	require.Len(t, matched, 1)
	assert.Equal(t, "한진물류", matched[0].Name)

	matched = svc.SearchClients("한", 1)
	assert.Len(t, matched, 1)

	// vehicle numbers are searchable too
	drivers := svc.SearchDrivers("88바", 10)
	require.Len(t, drivers, 1)
	assert.Equal(t, "김기사", drivers[0].Name)
}
