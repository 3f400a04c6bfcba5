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

// appAs meniru AuthMiddleware: inject identitas ke Locals sebelum route.
func appAs(db *gorm.DB, userID uint, role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		c.Locals("user_name", "Tester")
		c.Locals("userRole", role)
		return c.Next()
	})

	ctl := NewCommentController(db)
	g := app.Group("/comments")
	g.Delete("/:id", ctl.Delete)
	return app
}

func expectCommentRow(mock sqlmock.Sqlmock, id, authorID uint) {
	rows := sqlmock.NewRows([]string{"id", "entity_type", "entity_id", "author_id", "author_name", "body", "created_at", "updated_at"}).
		AddRow(id, "agency", 3, authorID, "Orang Lain", "halo", time.Now(), time.Now())
	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE "comments"\."id" = \$1`).
		WithArgs(int64(id), 1).
		WillReturnRows(rows)
}

func TestCommentDeleteForbiddenForStranger(t *testing.T) {
	db, mock := newMockDB(t)
	app := appAs(db, 5, "user") // bukan author (author = 99), bukan admin

	expectCommentRow(mock, 10, 99)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/comments/10", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentDeleteByAuthor(t *testing.T) {
	db, mock := newMockDB(t)
	app := appAs(db, 99, "user") // author sendiri

	expectCommentRow(mock, 10, 99)
	mock.ExpectExec(`DELETE FROM "comments" WHERE "comments"\."id" = \$1`).
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/comments/10", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentDeleteByAdmin(t *testing.T) {
	db, mock := newMockDB(t)
	app := appAs(db, 5, "admin") // bukan author, tapi admin

	expectCommentRow(mock, 10, 99)
	mock.ExpectExec(`DELETE FROM "comments" WHERE "comments"\."id" = \$1`).
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/comments/10", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	app := appAs(db, 5, "user")

	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE "comments"\."id" = \$1`).
		WithArgs(int64(77), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/comments/77", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
