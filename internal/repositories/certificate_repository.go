package repositories

import (
	"fmt"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// CertificateRepository defines the interface for certificate data access.
type CertificateRepository interface {
	Create(certificate *models.Certificate) error
	GetByTitle(title string) (*models.Certificate, error)
	GetAll() ([]models.Certificate, error)
	BulkUpdate(certificates []models.Certificate) error
}

// GORMCertificateRepository is a GORM implementation of CertificateRepository.
type GORMCertificateRepository struct {
	db *gorm.DB
}

// NewGORMCertificateRepository creates a new instance of GORMCertificateRepository.
func NewGORMCertificateRepository(db *gorm.DB) *GORMCertificateRepository {
	return &GORMCertificateRepository{
		db: db,
	}
}

// Create inserts a new certificate row.
func (r *GORMCertificateRepository) Create(certificate *models.Certificate) error {
	if err := r.db.Create(certificate).Error; err != nil {
		return fmt.Errorf("failed to create certificate: %w", err)
	}
	return nil
}

// GetByTitle retrieves a certificate by its unique title.
func (r *GORMCertificateRepository) GetByTitle(title string) (*models.Certificate, error) {
	var certificate models.Certificate
	if err := r.db.First(&certificate, "title = ?", title).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("certificate with title %q: %w", title, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get certificate by title %q: %w", title, err)
	}
	return &certificate, nil
}

// GetAll retrieves all certificates in storage order.
func (r *GORMCertificateRepository) GetAll() ([]models.Certificate, error) {
	var certificates []models.Certificate
	if err := r.db.Find(&certificates).Error; err != nil {
		return nil, fmt.Errorf("failed to get all certificates: %w", err)
	}
	return certificates, nil
}

// BulkUpdate applies title and image to each given row inside a single
// transaction. Rows whose id no longer exists are skipped silently.
func (r *GORMCertificateRepository) BulkUpdate(certificates []models.Certificate) error {
	if len(certificates) == 0 {
		return nil
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, cert := range certificates {
			res := tx.Model(&models.Certificate{}).Where("id = ?", cert.ID).
				Updates(map[string]interface{}{"title": cert.Title, "image": cert.Image})
			if res.Error != nil {
				return fmt.Errorf("failed to update certificate %d: %w", cert.ID, res.Error)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("certificate bulk update failed: %w", err)
	}
	return nil
}
