package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"realestate_backend/internals/constants"
)

var (
	ErrNoUserID = errors.New("user id tidak ada di token")
	ErrNoRole   = errors.New("role tidak ada di token")
)

// GetUserIDFromToken mengambil user_id yang sudah disimpan AuthMiddleware di Locals.
func GetUserIDFromToken(c *fiber.Ctx) (uint, error) {
	v := c.Locals("user_id")
	switch id := v.(type) {
	case uint:
		return id, nil
	case int:
		if id > 0 {
			return uint(id), nil
		}
	case float64:
		if id > 0 {
			return uint(id), nil
		}
	}
	return 0, ErrNoUserID
}

func GetUserRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("userRole").(string)
	if !ok || strings.TrimSpace(role) == "" {
		return "", ErrNoRole
	}
	return role, nil
}

// IsAdmin: admin atau owner dianggap administrator.
func IsAdmin(c *fiber.Ctx) bool {
	role, err := GetUserRoleFromToken(c)
	if err != nil {
		return false
	}
	return role == constants.RoleAdmin || role == constants.RoleOwner
}
