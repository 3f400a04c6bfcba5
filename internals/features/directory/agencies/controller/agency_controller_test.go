package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
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

func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctl := NewAgencyController(db)

	g := app.Group("/agency")
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.GetByID)
	g.Delete("/:id", ctl.Delete)
	return app
}

func TestAgencyCreateValidation(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTestApp(db)

	// owner_name hilang → 422, tidak ada query DB sama sekali
	req := httptest.NewRequest("POST", "/agency/", strings.NewReader(
		`{"office_name":"Properti Jaya","email":"budi@example.com"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgencyCreateDuplicateCUID(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTestApp(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "agencies" WHERE cuid = \$1`).
		WithArgs("cabc123def456abc123def456").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	req := httptest.NewRequest("POST", "/agency/", strings.NewReader(
		`{"cuid":"cabc123def456abc123def456","owner_name":"Budi","office_name":"Properti Jaya","email":"budi@example.com"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgencyGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTestApp(db)

	mock.ExpectQuery(`SELECT \* FROM "agencies" WHERE "agencies"\."id" = \$1`).
		WithArgs(42, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/agency/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgencyGetByIDBadParam(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTestApp(db)

	resp, err := app.Test(httptest.NewRequest("GET", "/agency/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgencyDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTestApp(db)

	mock.ExpectExec(`DELETE FROM "agencies" WHERE "agencies"\."id" = \$1`).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 0))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/agency/7", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgencyDeleteOK(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTestApp(db)

	mock.ExpectExec(`DELETE FROM "agencies" WHERE "agencies"\."id" = \$1`).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/agency/7", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
