package photo

import (
	"errors"
	"io"

	"backend-surfbuddy/internal/session"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the photo endpoints on the sessions group. A nil
// pipeline (no bucket configured) degrades the routes to 503.
func RegisterRoutes(r fiber.Router, pipe *Pipeline, sessions *session.Service) {
	r.Post("/:id/photos", func(c *fiber.Ctx) error {
		if pipe == nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "photo storage not configured")
		}

		header, err := c.FormFile("photo")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "photo file required")
		}
		f, err := header.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		compressed, err := Compress(data, DefaultMaxWidth, DefaultQuality)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "unsupported image")
		}

		url, err := pipe.Upload(c.Context(), compressed, c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "failed to upload photo")
		}

		sess, found, err := sessions.AttachPhoto(c.Context(), c.Params("id"), url)
		if !found {
			pipe.Delete(c.Context(), url)
			return fiber.NewError(fiber.StatusNotFound, "session not found")
		}
		if errors.Is(err, session.ErrPhotoLimit) {
			pipe.Delete(c.Context(), url)
			return fiber.NewError(fiber.StatusBadRequest, "photo limit reached")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "session not saved: "+err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(sess)
	})

	r.Delete("/:id/photos", func(c *fiber.Ctx) error {
		if pipe == nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "photo storage not configured")
		}

		var body struct {
			URL string `json:"url"`
		}
		if err := c.BodyParser(&body); err != nil || body.URL == "" {
			return fiber.NewError(fiber.StatusBadRequest, "url required")
		}

		_, found, err := sessions.DetachPhoto(c.Context(), c.Params("id"), body.URL)
		if !found {
			return fiber.NewError(fiber.StatusNotFound, "session not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		// Remote cleanup is best effort; the detach above already succeeded.
		pipe.Delete(c.Context(), body.URL)
		return c.SendStatus(fiber.StatusNoContent)
	})
}
