package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	setService "realestate_backend/internals/features/settings/site_settings/service"
)

// Path yang tetap hidup saat maintenance: namespace admin, auth (admin harus
// bisa login), probe settings publik + status maintenance, dan health check.
var maintenanceAllowPrefixes = []string{
	"/api/a",
	"/api/auth",
	"/api/public/settings",
	"/api/public/maintenance",
	"/health",
}

// MaintenanceGate menolak traffic non-admin dengan 503 saat flag maintenance aktif.
// Kegagalan membaca flag dianggap maintenance off (gate tidak boleh memblokir).
func MaintenanceGate(svc *setService.SettingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		for _, prefix := range maintenanceAllowPrefixes {
			if strings.HasPrefix(path, prefix) {
				return c.Next()
			}
		}

		if svc.MaintenanceOn() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"success":         false,
				"message":         "Sistem sedang maintenance, coba beberapa saat lagi.",
				"maintenanceMode": true,
			})
		}
		return c.Next()
	}
}
