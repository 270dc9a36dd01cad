package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSQLMigration(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateSQLMigration(dir, "Add Arrival Board!")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "_add_arrival_board.sql"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "-- +goose Up")
	assert.Contains(t, string(content), "-- +goose Down")

	require.NoError(t, ValidateDir(dir))
}

func TestCreateSQLMigrationRejectsBadInput(t *testing.T) {
	_, err := CreateSQLMigration("", "x")
	require.Error(t, err)

	_, err = CreateSQLMigration(t.TempDir(), "")
	require.Error(t, err)

	_, err = CreateSQLMigration(t.TempDir(), "!!!")
	require.Error(t, err)
}

func TestValidateDir(t *testing.T) {
	dir := t.TempDir()

	good := "-- +goose Up\nCREATE TABLE t (id INTEGER);\n-- +goose Down\nDROP TABLE t;\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "20250901120000_create_t.sql"), []byte(good), 0o644))
	require.NoError(t, ValidateDir(dir))

	// bad filename
	require.NoError(t, os.WriteFile(filepath.Join(dir, "create_u.sql"), []byte(good), 0o644))
	require.Error(t, ValidateDir(dir))
	require.NoError(t, os.Remove(filepath.Join(dir, "create_u.sql")))

	// duplicate version
	require.NoError(t, os.WriteFile(filepath.Join(dir, "20250901120000_create_u.sql"), []byte(good), 0o644))
	require.Error(t, ValidateDir(dir))
	require.NoError(t, os.Remove(filepath.Join(dir, "20250901120000_create_u.sql")))

	// missing goose headers
	require.NoError(t, os.WriteFile(filepath.Join(dir, "20250901120100_bad.sql"), []byte("CREATE TABLE x (id INTEGER);"), 0o644))
	require.Error(t, ValidateDir(dir))
}

func TestShippedMigrationsAreValid(t *testing.T) {
	require.NoError(t, ValidateDir("migrations"))
}
