package postgres

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inmocrm/backend/internal/infrastructure/logging"
)

func writeMigration(t *testing.T, dir, name, sql string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(sql), 0644); err != nil { //nolint:gosec
		t.Fatalf("failed to write migration %s: %v", name, err)
	}
}

func TestMigrator_Run(t *testing.T) {
	db := setupTestDB(t)
	log := logging.NewSlogLogger("error")

	dir := t.TempDir()
	writeMigration(t, dir, "001_create_widgets.sql", "CREATE TABLE widgets (id INTEGER PRIMARY KEY, name TEXT NOT NULL);")
	writeMigration(t, dir, "002_seed_widgets.sql", "INSERT INTO widgets (name) VALUES ('uno');")
	writeMigration(t, dir, "notas.txt", "no es una migración")

	migrator := NewMigrator(db, dir, log)
	require.NoError(t, migrator.Run())

	var applied []MigrationModel
	require.NoError(t, db.Order("name").Find(&applied).Error)
	require.Len(t, applied, 2)
	assert.Equal(t, "001_create_widgets.sql", applied[0].Name)
	assert.Equal(t, "002_seed_widgets.sql", applied[1].Name)

	t.Run("no reaplica las migraciones registradas", func(t *testing.T) {
		require.NoError(t, migrator.Run())

		var count int64
		require.NoError(t, db.Table("widgets").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("aplica solo las pendientes", func(t *testing.T) {
		writeMigration(t, dir, "003_more_widgets.sql", "INSERT INTO widgets (name) VALUES ('dos');")
		require.NoError(t, migrator.Run())

		var count int64
		require.NoError(t, db.Table("widgets").Count(&count).Error)
		assert.Equal(t, int64(2), count)

		require.NoError(t, db.Find(&applied).Error)
		assert.Len(t, applied, 3)
	})
}

func TestMigrator_RunFailure(t *testing.T) {
	db := setupTestDB(t)
	log := logging.NewSlogLogger("error")

	dir := t.TempDir()
	writeMigration(t, dir, "001_bad.sql", "CREATE TABLE;")

	migrator := NewMigrator(db, dir, log)
	require.Error(t, migrator.Run())

	// La migración fallida no queda registrada
	var count int64
	require.NoError(t, db.Model(&MigrationModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
