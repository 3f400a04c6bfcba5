package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func settingRow(key, value string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "setting_key", "setting_value", "type", "is_public", "version", "created_at", "updated_at"}).
		AddRow(1, key, value, "string", true, 1, time.Now(), time.Now())
}

// Panggilan kedua harus dilayani cache — satu expectation DB saja.
func TestSettingServiceGetUsesCache(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSettingService(db)

	mock.ExpectQuery(`SELECT \* FROM "site_settings" WHERE setting_key = \$1`).
		WithArgs("site_name", 1).
		WillReturnRows(settingRow("site_name", "RealEstate"))

	v, ok, err := svc.Get("site_name")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "RealEstate", v)

	v2, ok2, err2 := svc.Get("site_name")
	require.NoError(t, err2)
	require.True(t, ok2)
	assert.Equal(t, "RealEstate", v2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Key absen juga di-cache (negative cache) — satu query untuk dua panggilan.
func TestSettingServiceNegativeCache(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSettingService(db)

	mock.ExpectQuery(`SELECT \* FROM "site_settings" WHERE setting_key = \$1`).
		WithArgs("tidak_ada", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, ok, err := svc.Get("tidak_ada")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok2, err2 := svc.Get("tidak_ada")
	require.NoError(t, err2)
	assert.False(t, ok2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingServiceGetBool(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSettingService(db)

	mock.ExpectQuery(`SELECT \* FROM "site_settings" WHERE setting_key = \$1`).
		WithArgs("maintenance_mode", 1).
		WillReturnRows(settingRow("maintenance_mode", "true"))

	on, err := svc.GetBool("maintenance_mode")
	require.NoError(t, err)
	assert.True(t, on)
}

// Set pada key yang ada harus bump version dan invalidasi cache.
func TestSettingServiceSetBumpsVersionAndInvalidates(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSettingService(db)

	// warm cache dengan nilai lama
	mock.ExpectQuery(`SELECT \* FROM "site_settings" WHERE setting_key = \$1`).
		WithArgs("site_name", 1).
		WillReturnRows(settingRow("site_name", "Lama"))
	_, _, err := svc.Get("site_name")
	require.NoError(t, err)

	// Set: First (ketemu) lalu Save
	mock.ExpectQuery(`SELECT \* FROM "site_settings" WHERE setting_key = \$1`).
		WithArgs("site_name", 1).
		WillReturnRows(settingRow("site_name", "Lama"))
	mock.ExpectExec(`UPDATE "site_settings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	m, err := svc.Set("site_name", "Baru", "string", true)
	require.NoError(t, err)
	assert.Equal(t, "Baru", m.Value)
	assert.Equal(t, 2, m.Version)

	// cache harus kosong lagi → Get berikutnya query DB
	mock.ExpectQuery(`SELECT \* FROM "site_settings" WHERE setting_key = \$1`).
		WithArgs("site_name", 1).
		WillReturnRows(settingRow("site_name", "Baru"))

	v, ok, err := svc.Get("site_name")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Baru", v)

	assert.NoError(t, mock.ExpectationsWereMet())
}
