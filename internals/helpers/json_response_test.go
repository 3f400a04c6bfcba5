package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveVia(t *testing.T, target string) Paging {
	t.Helper()

	var got Paging
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		p := resolveVia(t, "/x")
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.PerPage)
		assert.Equal(t, 0, p.Offset)
	})

	t.Run("page dan per_page", func(t *testing.T) {
		p := resolveVia(t, "/x?page=3&per_page=10")
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, 10, p.PerPage)
		assert.Equal(t, 20, p.Offset)
	})

	t.Run("alias limit", func(t *testing.T) {
		p := resolveVia(t, "/x?limit=5")
		assert.Equal(t, 5, p.PerPage)
	})

	t.Run("per_page dibatasi max", func(t *testing.T) {
		p := resolveVia(t, "/x?per_page=9999")
		assert.Equal(t, 100, p.PerPage)
	})

	t.Run("input rusak jatuh ke default", func(t *testing.T) {
		p := resolveVia(t, "/x?page=-4&per_page=abc")
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.PerPage)
	})
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	first := BuildPaginationFromPage(45, 1, 20)
	assert.False(t, first.HasPrev)
	assert.True(t, first.HasNext)

	last := BuildPaginationFromPage(45, 3, 20)
	assert.False(t, last.HasNext)

	empty := BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", statusToErrorCode(fiber.StatusNotFound))
	assert.Equal(t, "VALIDATION_ERROR", statusToErrorCode(fiber.StatusUnprocessableEntity))
	assert.Equal(t, "CONFLICT", statusToErrorCode(fiber.StatusConflict))
	assert.Equal(t, "MAINTENANCE", statusToErrorCode(fiber.StatusServiceUnavailable))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(502))
	assert.Equal(t, "ERROR", statusToErrorCode(418))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(errDup("duplicate key value violates unique constraint \"idx_agencies_cuid\"")))
	assert.True(t, IsUniqueViolation(errDup("ERROR: something (SQLSTATE 23505)")))
	assert.False(t, IsUniqueViolation(errDup("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}

type errDup string

func (e errDup) Error() string { return string(e) }
