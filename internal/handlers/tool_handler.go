package handlers

import (
	"errors"
	"log"

	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ToolHandler handles the admin tool forms, including the inline
// bulk-edit listing.
type ToolHandler struct {
	service  *services.ToolService
	validate *validator.Validate
}

// NewToolHandler creates a new ToolHandler.
func NewToolHandler(service *services.ToolService) *ToolHandler {
	return &ToolHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the tool routes with the Fiber app.
func (h *ToolHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/update-tools", h.HandleList)
	router.Post("/update-tools", h.HandleCreate)
	router.Get("/edit-tools", h.HandleList)
	router.Post("/save-tool-edits", h.HandleSaveEdits)
}

// HandleList returns all tools for the admin listing.
func (h *ToolHandler) HandleList(c *fiber.Ctx) error {
	tools, err := h.service.GetAllTools()
	if err != nil {
		log.Printf("Error listing tools: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve tools",
			"error":   err.Error(),
		})
	}
	return c.JSON(tools)
}

// HandleCreate validates and inserts a new tool.
func (h *ToolHandler) HandleCreate(c *fiber.Ctx) error {
	var tool models.Tool
	if err := c.BodyParser(&tool); err != nil {
		log.Printf("Error parsing tool request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(tool); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	if err := h.service.CreateTool(&tool); err != nil {
		log.Printf("Error creating tool: %v", err)
		if errors.Is(err, repositories.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "A tool with this title already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create tool",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Tool saved",
		"tool":    tool,
	})
}

// HandleSaveEdits applies a bulk-edit submission. Rows with an empty
// title or image are skipped without failing the rest; the remainder
// commits as one transaction.
func (h *ToolHandler) HandleSaveEdits(c *fiber.Ctx) error {
	var req SaveEditsRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing tool edits body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	rows := make([]models.Tool, 0, len(req.Rows))
	for _, row := range req.Rows {
		rows = append(rows, models.Tool{
			Model: gorm.Model{ID: row.ID},
			Title: row.Title,
			Image: row.Image,
		})
	}

	applied, err := h.service.BulkEdit(rows)
	if err != nil {
		log.Printf("Error applying tool edits: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save tool edits",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Tool edits saved",
		"applied": applied,
		"skipped": len(req.Rows) - applied,
	})
}
