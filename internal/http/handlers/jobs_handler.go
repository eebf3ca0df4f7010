package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	applog "shelfshare/internal/log"
	"shelfshare/internal/services"
)

// JobsHandler exposes the scheduler-triggered batch jobs. Method and request
// body are ignored; each hit is one full run.
type JobsHandler struct {
	Returns *services.ReturnService
	Chats   *services.ChatService
}

func (h *JobsHandler) AutoReturn(c *fiber.Ctx) error {
	sum, err := h.Returns.Sweep(time.Now())
	if err != nil {
		applog.Error(c, "jobs.autoreturn.scan.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("could not load active loans")
	}
	applog.Audit(c, "jobs.autoreturn.done", map[string]any{
		"scanned": sum.Scanned, "returned": sum.Returned, "failed": sum.Failed,
	})
	return c.SendString(sum.String())
}

func (h *JobsHandler) CleanChats(c *fiber.Ctx) error {
	n, err := h.Chats.Clean()
	if err != nil {
		applog.Error(c, "jobs.cleanchats.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("could not clean chats")
	}
	applog.Audit(c, "jobs.cleanchats.done", map[string]any{"deleted": n})
	return c.SendString(fmt.Sprintf("deleted %d chats", n))
}
