package arrivals

import (
	"context"
	"testing"
	"time"

	pkgerrors "github.com/smlogitech/backoffice/pkg/errors"
	"github.com/smlogitech/backoffice/pkg/kst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupArrivalsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	board := `
CREATE TABLE IF NOT EXISTS arrival_board (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  vehicle_no TEXT NOT NULL DEFAULT '',
  driver_name TEXT NOT NULL DEFAULT '',
  route TEXT NOT NULL DEFAULT '',
  expected_at TEXT NOT NULL DEFAULT '',
  memo TEXT NOT NULL DEFAULT '',
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(board).Error)
	require.NoError(t, db.Exec(`DELETE FROM arrival_board`).Error)
	return db
}

var boardNow = time.Date(2025, 6, 15, 12, 0, 0, 0, kst.Location)

func newBoardService(t *testing.T, db *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(NewRepository(db), func() time.Time { return boardNow })
	require.NoError(t, err)
	return svc
}

func TestArrivalCreateCountdown(t *testing.T) {
	db := setupArrivalsTestDB(t)
	svc := newBoardService(t, db)

	entry, err := svc.Create(context.Background(), Input{
		VehicleNo:  "88바1234",
		DriverName: "김기사",
		Route:      "서울→부산",
		ExpectedAt: "2025-06-15 13:30",
	})
	require.NoError(t, err)
	require.Positive(t, entry.ID)
	assert.Equal(t, "2025-06-15T13:30", entry.ExpectedAt)
	assert.Equal(t, int64(90*60), entry.RemainingSeconds)
	assert.False(t, entry.Arrived)
}

func TestArrivalPastExpectedIsArrived(t *testing.T) {
	db := setupArrivalsTestDB(t)
	svc := newBoardService(t, db)

	entry, err := svc.Create(context.Background(), Input{
		VehicleNo:  "88바1234",
		ExpectedAt: "2025-06-15T11:00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-3600), entry.RemainingSeconds)
	assert.True(t, entry.Arrived)
}

func TestArrivalCreateValidation(t *testing.T) {
	db := setupArrivalsTestDB(t)
	svc := newBoardService(t, db)
	ctx := context.Background()

	_, err := svc.Create(ctx, Input{ExpectedAt: "2025-06-15T13:30"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.Create(ctx, Input{VehicleNo: "88바1234", ExpectedAt: "tomorrow"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestArrivalListOrdersByExpected(t *testing.T) {
	db := setupArrivalsTestDB(t)
	svc := newBoardService(t, db)
	ctx := context.Background()

	_, err := svc.Create(ctx, Input{VehicleNo: "b", ExpectedAt: "2025-06-15T15:00"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, Input{VehicleNo: "a", ExpectedAt: "2025-06-15T13:00"})
	require.NoError(t, err)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].VehicleNo)
	assert.Equal(t, "b", entries[1].VehicleNo)
}

func TestArrivalUpdateAndDelete(t *testing.T) {
	db := setupArrivalsTestDB(t)
	svc := newBoardService(t, db)
	ctx := context.Background()

	entry, err := svc.Create(ctx, Input{VehicleNo: "88바1234", ExpectedAt: "2025-06-15T13:00"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, entry.ID, Input{
		VehicleNo:  "88바1234",
		Route:      "부산→서울",
		ExpectedAt: "2025-06-15T16:00",
	})
	require.NoError(t, err)
	assert.Equal(t, entry.ID, updated.ID)
	assert.Equal(t, "부산→서울", updated.Route)
	assert.Equal(t, int64(4*3600), updated.RemainingSeconds)

	require.NoError(t, svc.Delete(ctx, entry.ID))

	err = svc.Delete(ctx, entry.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())

	_, err = svc.Update(ctx, entry.ID, Input{VehicleNo: "x", ExpectedAt: "2025-06-15T16:00"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
