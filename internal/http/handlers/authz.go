package handlers

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "shelfshare/internal/log"
)

// RequireServiceKey gates the job routes on the scheduler's privileged
// credential, presented as a Bearer token.
func RequireServiceKey(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		got := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			applog.Security(c, "access.denied.jobs", nil)
			return c.Status(fiber.StatusForbidden).SendString("forbidden")
		}
		return c.Next()
	}
}
