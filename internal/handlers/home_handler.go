package handlers

import (
	"log"

	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// HomeHandler serves the public homepage payload.
type HomeHandler struct {
	service *services.HomeService
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(service *services.HomeService) *HomeHandler {
	return &HomeHandler{
		service: service,
	}
}

// RegisterRoutes registers the homepage route with the Fiber app.
func (h *HomeHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleHome)
}

// HandleHome returns the five entity lists plus the tenure string.
func (h *HomeHandler) HandleHome(c *fiber.Ctx) error {
	page, err := h.service.GetHomePage()
	if err != nil {
		log.Printf("Error composing homepage: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load homepage",
			"error":   err.Error(),
		})
	}
	return c.JSON(page)
}
