package controller

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

// appAs meniru AuthMiddleware: inject identitas ke Locals sebelum route user.
func appAs(db *gorm.DB, userID uint, role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		c.Locals("user_name", "Tester")
		c.Locals("userRole", role)
		return c.Next()
	})

	ctl := NewTaskController(db)
	g := app.Group("/tasks")
	g.Get("/:id", ctl.GetOwnByID)
	return app
}

func expectTaskRow(mock sqlmock.Sqlmock, id uint, assigneeID *uint) {
	rows := sqlmock.NewRows([]string{"id", "title", "details", "assignee_id", "due_date", "priority", "status", "created_at", "updated_at"}).
		AddRow(id, "Follow up listing", nil, assigneeID, nil, "normal", "open", time.Now(), time.Now())
	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE "tasks"\."id" = \$1`).
		WithArgs(int64(id), 1).
		WillReturnRows(rows)
}

// List: Count lewat session terpisah, jadi query Find tidak kebawa efek
// samping dan filter tidak terduplikasi.
func TestTaskListCountAndFindShareFilters(t *testing.T) {
	db, mock := newMockDB(t)

	app := fiber.New()
	ctl := NewTaskController(db)
	app.Get("/tasks/list", ctl.List)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "tasks" WHERE status = \$1`).
		WithArgs("open").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mine := uint(99)
	rows := sqlmock.NewRows([]string{"id", "title", "details", "assignee_id", "due_date", "priority", "status", "created_at", "updated_at"}).
		AddRow(1, "Follow up listing", nil, &mine, nil, "normal", "open", time.Now(), time.Now())
	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE status = \$1 ORDER BY created_at DESC LIMIT \$2`).
		WithArgs("open", 25).
		WillReturnRows(rows)

	resp, err := app.Test(httptest.NewRequest("GET", "/tasks/list?status=open", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Detail tugas di scope user hanya boleh dibaca assignee-nya sendiri.
func TestTaskGetOwnByIDForbiddenForStranger(t *testing.T) {
	db, mock := newMockDB(t)
	app := appAs(db, 5, "user") // tugas milik user 99

	other := uint(99)
	expectTaskRow(mock, 10, &other)

	resp, err := app.Test(httptest.NewRequest("GET", "/tasks/10", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskGetOwnByIDUnassignedForbidden(t *testing.T) {
	db, mock := newMockDB(t)
	app := appAs(db, 5, "user")

	expectTaskRow(mock, 10, nil) // belum ada assignee

	resp, err := app.Test(httptest.NewRequest("GET", "/tasks/10", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskGetOwnByIDAsAssignee(t *testing.T) {
	db, mock := newMockDB(t)
	app := appAs(db, 99, "user")

	mine := uint(99)
	expectTaskRow(mock, 10, &mine)

	resp, err := app.Test(httptest.NewRequest("GET", "/tasks/10", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskGetOwnByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	app := appAs(db, 5, "user")

	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE "tasks"\."id" = \$1`).
		WithArgs(int64(77), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/tasks/77", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
