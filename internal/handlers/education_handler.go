package handlers

import (
	"errors"
	"log"

	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// EducationHandler handles the admin education form.
type EducationHandler struct {
	service  *services.EducationService
	validate *validator.Validate
}

// NewEducationHandler creates a new EducationHandler.
func NewEducationHandler(service *services.EducationService) *EducationHandler {
	return &EducationHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the education routes with the Fiber app.
func (h *EducationHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/update-education", h.HandleList)
	router.Post("/update-education", h.HandleCreate)
}

// HandleList returns all education entries for the admin form, newest first.
func (h *EducationHandler) HandleList(c *fiber.Ctx) error {
	qualifications, err := h.service.GetAllEducation()
	if err != nil {
		log.Printf("Error listing education: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve education entries",
			"error":   err.Error(),
		})
	}
	return c.JSON(qualifications)
}

// HandleCreate validates and inserts a new education entry.
func (h *EducationHandler) HandleCreate(c *fiber.Ctx) error {
	var education models.Education
	if err := c.BodyParser(&education); err != nil {
		log.Printf("Error parsing education request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(education); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	if err := h.service.CreateEducation(&education); err != nil {
		log.Printf("Error creating education: %v", err)
		if errors.Is(err, repositories.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "An education entry with this exam already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create education entry",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Education entry saved",
		"education": education,
	})
}
