package handlers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ExperienceHandler handles the admin experience forms.
type ExperienceHandler struct {
	service  *services.ExperienceService
	validate *validator.Validate
}

// NewExperienceHandler creates a new ExperienceHandler.
func NewExperienceHandler(service *services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the experience routes with the Fiber app.
func (h *ExperienceHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/update-experience", h.HandleList)
	router.Post("/update-experience", h.HandleCreate)
	router.Get("/edit-experience/:id", h.HandleGetForEdit)
	router.Post("/edit-experience/:id", h.HandleUpdate)
	router.Put("/edit-experience/:id", h.HandleUpdate)
}

// ExperienceRequest represents the experience form. Dates come in as
// YYYY-MM-DD strings; the exit date is optional and ignored entirely
// while "present" is ticked.
type ExperienceRequest struct {
	Company        string `json:"company" validate:"required"`
	Position       string `json:"position" validate:"required"`
	JoiningDate    string `json:"joining_date" validate:"required,datetime=2006-01-02"`
	ExitDate       string `json:"exit_date" validate:"omitempty,datetime=2006-01-02"`
	Present        bool   `json:"present"`
	JobDescription string `json:"job_description" validate:"required"`
}

// apply copies the form fields onto an experience row.
func (r ExperienceRequest) apply(experience *models.Experience) error {
	joining, err := time.Parse("2006-01-02", r.JoiningDate)
	if err != nil {
		return fmt.Errorf("invalid joining date: %w", err)
	}
	experience.Company = r.Company
	experience.Position = r.Position
	experience.JoiningDate = joining
	experience.Present = r.Present
	experience.JobDescription = r.JobDescription
	experience.ExitDate = nil
	if r.ExitDate != "" {
		exit, err := time.Parse("2006-01-02", r.ExitDate)
		if err != nil {
			return fmt.Errorf("invalid exit date: %w", err)
		}
		experience.ExitDate = &exit
	}
	return nil
}

// HandleList returns all experience entries for the admin form, newest first.
func (h *ExperienceHandler) HandleList(c *fiber.Ctx) error {
	experiences, err := h.service.GetAllExperience()
	if err != nil {
		log.Printf("Error listing experience: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve experience entries",
			"error":   err.Error(),
		})
	}
	return c.JSON(experiences)
}

// HandleCreate validates and inserts a new experience entry.
func (h *ExperienceHandler) HandleCreate(c *fiber.Ctx) error {
	req, ok := h.parseForm(c)
	if !ok {
		return nil
	}

	var experience models.Experience
	if err := req.apply(&experience); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid date value",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreateExperience(&experience); err != nil {
		log.Printf("Error creating experience: %v", err)
		if errors.Is(err, repositories.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "An experience entry for this company already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create experience entry",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Experience entry saved",
		"experience": experience,
	})
}

// HandleGetForEdit loads an existing entry to pre-populate the edit form.
func (h *ExperienceHandler) HandleGetForEdit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid experience id",
		})
	}

	experience, err := h.service.GetExperienceByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Experience with ID %d not found", id),
			})
		}
		log.Printf("Error getting experience %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve experience entry",
			"error":   err.Error(),
		})
	}
	return c.JSON(experience)
}

// HandleUpdate overwrites all fields of an existing entry with the
// submitted form.
func (h *ExperienceHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid experience id",
		})
	}

	experience, err := h.service.GetExperienceByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Experience with ID %d not found", id),
			})
		}
		log.Printf("Error getting experience %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve experience entry",
			"error":   err.Error(),
		})
	}

	req, ok := h.parseForm(c)
	if !ok {
		return nil
	}
	if err := req.apply(experience); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid date value",
			"error":   err.Error(),
		})
	}

	if err := h.service.UpdateExperience(experience); err != nil {
		log.Printf("Error updating experience %d: %v", id, err)
		if errors.Is(err, repositories.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "An experience entry for this company already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update experience entry",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":    "Experience entry updated",
		"experience": experience,
	})
}

// parseForm binds and validates the experience form, writing the error
// response itself when the input is bad.
func (h *ExperienceHandler) parseForm(c *fiber.Ctx) (ExperienceRequest, bool) {
	var req ExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing experience request body: %v", err)
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return req, false
	}
	if err := h.validate.Struct(req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
		return req, false
	}
	return req, true
}
