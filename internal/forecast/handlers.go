package forecast

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Get("/", func(c *fiber.Ctx) error {
		lat, lng, err := coords(c)
		if err != nil {
			return err
		}
		return c.JSON(svc.Forecast(c.Context(), lat, lng))
	})

	r.Get("/tides", func(c *fiber.Ctx) error {
		lat, lng, err := coords(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": svc.Tides(c.Context(), lat, lng)})
	})
}

func coords(c *fiber.Ctx) (float64, float64, error) {
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr == "" || lngStr == "" {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "lat and lng required")
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "invalid lat")
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "invalid lng")
	}
	return lat, lng, nil
}
