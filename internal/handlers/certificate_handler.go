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

// CertificateHandler handles the admin certificate forms, including
// the inline bulk-edit listing.
type CertificateHandler struct {
	service  *services.CertificateService
	validate *validator.Validate
}

// NewCertificateHandler creates a new CertificateHandler.
func NewCertificateHandler(service *services.CertificateService) *CertificateHandler {
	return &CertificateHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the certificate routes with the Fiber app.
func (h *CertificateHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/update-certificate", h.HandleList)
	router.Post("/update-certificate", h.HandleCreate)
	router.Get("/edit-certificates", h.HandleList)
	router.Post("/save-certificate-edits", h.HandleSaveEdits)
}

// HandleList returns all certificates for the admin listing.
func (h *CertificateHandler) HandleList(c *fiber.Ctx) error {
	certificates, err := h.service.GetAllCertificates()
	if err != nil {
		log.Printf("Error listing certificates: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve certificates",
			"error":   err.Error(),
		})
	}
	return c.JSON(certificates)
}

// HandleCreate validates and inserts a new certificate.
func (h *CertificateHandler) HandleCreate(c *fiber.Ctx) error {
	var certificate models.Certificate
	if err := c.BodyParser(&certificate); err != nil {
		log.Printf("Error parsing certificate request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(certificate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	if err := h.service.CreateCertificate(&certificate); err != nil {
		log.Printf("Error creating certificate: %v", err)
		if errors.Is(err, repositories.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "A certificate with this title already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create certificate",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Certificate saved",
		"certificate": certificate,
	})
}

// EditRow is one inline row of a bulk-edit submission.
type EditRow struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}

// SaveEditsRequest represents a bulk-edit form post.
type SaveEditsRequest struct {
	Rows []EditRow `json:"rows"`
}

// HandleSaveEdits applies a bulk-edit submission. Rows with an empty
// title or image are skipped without failing the rest; the remainder
// commits as one transaction.
func (h *CertificateHandler) HandleSaveEdits(c *fiber.Ctx) error {
	var req SaveEditsRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing certificate edits body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	rows := make([]models.Certificate, 0, len(req.Rows))
	for _, row := range req.Rows {
		rows = append(rows, models.Certificate{
			Model: gorm.Model{ID: row.ID},
			Title: row.Title,
			Image: row.Image,
		})
	}

	applied, err := h.service.BulkEdit(rows)
	if err != nil {
		log.Printf("Error applying certificate edits: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save certificate edits",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Certificate edits saved",
		"applied": applied,
		"skipped": len(req.Rows) - applied,
	})
}
