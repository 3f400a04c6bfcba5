package middlewares

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityModel "realestate_backend/internals/features/activity/activity_logs/model"
)

// ActivityTracker mencatat request mutasi (POST/PUT/DELETE) user ter-autentikasi
// SETELAH response ditentukan. Gagal mencatat tidak boleh menggagalkan request.
func ActivityTracker(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		method := c.Method()
		if method != fiber.MethodPost && method != fiber.MethodPut && method != fiber.MethodDelete {
			return err
		}

		userID, ok := c.Locals("user_id").(uint)
		if !ok {
			return err
		}
		userName, _ := c.Locals("user_name").(string)

		entry := activityModel.ActivityLogModel{
			UserID:     &userID,
			UserName:   userName,
			Action:     method + " " + c.Route().Path,
			EntityType: entityTypeFromPath(c.Route().Path),
			EntityID:   c.Params("id"),
			StatusCode: c.Response().StatusCode(),
			IPAddress:  c.IP(),
			UserAgent:  c.Get(fiber.HeaderUserAgent),
		}

		// best-effort, di luar request path
		go func(e activityModel.ActivityLogModel) {
			if insErr := db.Create(&e).Error; insErr != nil {
				log.Printf("[WARN] activity log gagal: %v", insErr)
			}
		}(entry)

		return err
	}
}

// entityTypeFromPath ambil segmen resource dari route path,
// mis. "/api/a/agency/:id" → "agency".
func entityTypeFromPath(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, p := range parts {
		if p == "a" || p == "u" || p == "public" {
			if i+1 < len(parts) {
				return parts[i+1]
			}
		}
	}
	if len(parts) > 0 {
		return parts[len(parts)-1]
	}
	return ""
}
