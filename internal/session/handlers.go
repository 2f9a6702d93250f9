package session

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/", func(c *fiber.Ctx) error {
		var req Session
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Date == "" || req.Location == "" {
			return fiber.NewError(fiber.StatusBadRequest, "date and location required")
		}
		if req.Board != "" && !ValidBoard(req.Board) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown board type")
		}
		if req.Rating < 1 || req.Rating > 5 {
			return fiber.NewError(fiber.StatusBadRequest, "rating must be between 1 and 5")
		}
		if req.Conditions == "" {
			req.Conditions = "fair"
		} else if !ValidConditions(req.Conditions) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown conditions value")
		}
		if req.Crowd == "" {
			req.Crowd = "moderate"
		} else if !ValidCrowd(req.Crowd) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown crowd value")
		}
		created, err := svc.Create(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "session not saved: "+err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	r.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(svc.List(c.Context()))
	})

	r.Put("/:id", func(c *fiber.Ctx) error {
		var patch Patch
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if patch.Board != nil && !ValidBoard(*patch.Board) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown board type")
		}
		if patch.Rating != nil && (*patch.Rating < 1 || *patch.Rating > 5) {
			return fiber.NewError(fiber.StatusBadRequest, "rating must be between 1 and 5")
		}
		updated, found, err := svc.Update(c.Context(), c.Params("id"), patch)
		if !found {
			return fiber.NewError(fiber.StatusNotFound, "session not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "session not saved: "+err.Error())
		}
		return c.JSON(updated)
	})

	r.Delete("/:id", func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("id")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
