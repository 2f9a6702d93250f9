package spot

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/", func(c *fiber.Ctx) error {
		var req Spot
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Lat == 0 && req.Lng == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "lat and lng required")
		}
		saved, err := svc.Add(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "favorite not saved: "+err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(saved)
	})

	r.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(svc.List(c.Context()))
	})

	r.Delete("/:id", func(c *fiber.Ctx) error {
		if err := svc.Remove(c.Context(), c.Params("id")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
