package analytics

import (
	"time"

	"backend-surfbuddy/internal/session"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, sessions *session.Service) {
	r.Get("/summary", func(c *fiber.Ctx) error {
		w := ParseWindow(c.Query("range"))
		filtered := FilterByWindow(sessions.List(c.Context()), w, time.Now())
		return c.JSON(SummaryStats(filtered))
	})

	r.Get("/monthly", func(c *fiber.Ctx) error {
		w := ParseWindow(c.Query("range"))
		now := time.Now()
		filtered := FilterByWindow(sessions.List(c.Context()), w, now)
		return c.JSON(MonthlyBuckets(filtered, w.Months(), now))
	})

	r.Get("/distribution", func(c *fiber.Ctx) error {
		field := c.Query("field", "board")
		if field != "board" && field != "conditions" && field != "crowd" {
			return fiber.NewError(fiber.StatusBadRequest, "field must be board, conditions or crowd")
		}
		w := ParseWindow(c.Query("range"))
		filtered := FilterByWindow(sessions.List(c.Context()), w, time.Now())
		return c.JSON(DistributionBy(filtered, field))
	})
}
