package middlewares

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	setService "realestate_backend/internals/features/settings/site_settings/service"
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

func gateApp(svc *setService.SettingService) *fiber.App {
	app := fiber.New()
	app.Use(MaintenanceGate(svc))

	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/api/public/agency/list", ok)
	app.Get("/api/public/maintenance", ok)
	app.Get("/api/a/agency/list", ok)
	return app
}

func maintenanceRow(value string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "setting_key", "setting_value", "type", "is_public", "version", "created_at", "updated_at"}).
		AddRow(1, "maintenance_mode", value, "bool", true, 1, time.Now(), time.Now())
}

func TestMaintenanceGateBlocksPublicTraffic(t *testing.T) {
	db, mock := newMockDB(t)
	svc := setService.NewSettingService(db)
	app := gateApp(svc)

	mock.ExpectQuery(`SELECT \* FROM "site_settings" WHERE setting_key = \$1`).
		WithArgs("maintenance_mode", 1).
		WillReturnRows(maintenanceRow("true"))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/public/agency/list", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaintenanceGateAllowListSkipsCheck(t *testing.T) {
	db, mock := newMockDB(t)
	svc := setService.NewSettingService(db)
	app := gateApp(svc)

	// Tidak boleh ada query DB untuk path allow-list.
	for _, path := range []string{"/api/public/maintenance", "/api/a/agency/list"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaintenanceGateOffLetsTrafficThrough(t *testing.T) {
	db, mock := newMockDB(t)
	svc := setService.NewSettingService(db)
	app := gateApp(svc)

	mock.ExpectQuery(`SELECT \* FROM "site_settings" WHERE setting_key = \$1`).
		WithArgs("maintenance_mode", 1).
		WillReturnRows(maintenanceRow("false"))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/public/agency/list", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaintenanceGateDBErrorNeverBlocks(t *testing.T) {
	db, mock := newMockDB(t)
	svc := setService.NewSettingService(db)
	app := gateApp(svc)

	mock.ExpectQuery(`SELECT \* FROM "site_settings" WHERE setting_key = \$1`).
		WithArgs("maintenance_mode", 1).
		WillReturnError(assert.AnError)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/public/agency/list", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
