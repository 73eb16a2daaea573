package handlers

import (
	"errors"
	"fmt"
	"log"

	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProjectHandler handles the admin project forms and the public
// project-detail document lookup.
type ProjectHandler struct {
	service  *services.ProjectService
	validate *validator.Validate
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the unauthenticated project routes.
func (h *ProjectHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/project_details/:id", h.HandleProjectDetails)
}

// RegisterRoutes registers the admin project routes with the Fiber app.
func (h *ProjectHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/update-portfolio", h.HandleList)
	router.Post("/update-portfolio", h.HandleCreate)
	router.Get("/edit-project/:id", h.HandleGetForEdit)
	router.Post("/edit-project/:id", h.HandleUpdate)
	router.Put("/edit-project/:id", h.HandleUpdate)
}

// HandleProjectDetails resolves the write-up document URL for a project.
func (h *ProjectHandler) HandleProjectDetails(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid project id",
		})
	}

	fileURL, err := h.service.DocumentURL(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No document found for this project",
			})
		}
		log.Printf("Error resolving document for project %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not resolve project document",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"file_url": fileURL,
	})
}

// HandleList returns all projects plus the closed category set the
// admin form offers.
func (h *ProjectHandler) HandleList(c *fiber.Ctx) error {
	projects, err := h.service.GetAllProjects()
	if err != nil {
		log.Printf("Error listing projects: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve projects",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"projects":   projects,
		"categories": models.ProjectCategories,
	})
}

// HandleCreate validates and inserts a new project.
func (h *ProjectHandler) HandleCreate(c *fiber.Ctx) error {
	var project models.Project
	if err := c.BodyParser(&project); err != nil {
		log.Printf("Error parsing project request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(project); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	if err := h.service.CreateProject(&project); err != nil {
		log.Printf("Error creating project: %v", err)
		if errors.Is(err, repositories.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "A project with this title already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create project",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Project saved",
		"project": project,
	})
}

// HandleGetForEdit loads an existing project to pre-populate the edit form.
func (h *ProjectHandler) HandleGetForEdit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid project id",
		})
	}

	project, err := h.service.GetProjectByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Project with ID %d not found", id),
			})
		}
		log.Printf("Error getting project %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve project",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"project":    project,
		"categories": models.ProjectCategories,
	})
}

// HandleUpdate overwrites all fields of an existing project with the
// submitted form.
func (h *ProjectHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid project id",
		})
	}

	project, err := h.service.GetProjectByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Project with ID %d not found", id),
			})
		}
		log.Printf("Error getting project %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve project",
			"error":   err.Error(),
		})
	}

	var form models.Project
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing project request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	project.Title = form.Title
	project.Category = form.Category
	project.Image = form.Image
	project.Description = form.Description

	if err := h.service.UpdateProject(project); err != nil {
		log.Printf("Error updating project %d: %v", id, err)
		if errors.Is(err, repositories.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "A project with this title already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update project",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Project updated",
		"project": project,
	})
}
