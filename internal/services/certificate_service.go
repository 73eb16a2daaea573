package services

import (
	"fmt"

	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/patrickmn/go-cache"
)

// CertificateService handles business logic for certificates,
// including the bulk-edit listing flow.
type CertificateService struct {
	repo  repositories.CertificateRepository
	cache *cache.Cache
}

// NewCertificateService creates a new CertificateService.
func NewCertificateService(repo repositories.CertificateRepository, pageCache *cache.Cache) *CertificateService {
	return &CertificateService{
		repo:  repo,
		cache: pageCache,
	}
}

// CreateCertificate inserts a new certificate. The title is a unique
// column; a second row with the same title is rejected.
func (s *CertificateService) CreateCertificate(certificate *models.Certificate) error {
	if existing, err := s.repo.GetByTitle(certificate.Title); err == nil && existing != nil {
		return fmt.Errorf("certificate with title %q already exists: %w", certificate.Title, repositories.ErrDuplicate)
	}
	if err := s.repo.Create(certificate); err != nil {
		return err
	}
	invalidateHome(s.cache)
	return nil
}

// GetAllCertificates retrieves all certificates in storage order.
func (s *CertificateService) GetAllCertificates() ([]models.Certificate, error) {
	return s.repo.GetAll()
}

// BulkEdit applies every submitted row whose title and image are both
// non-empty, silently skipping incomplete rows, in one commit. It
// returns how many rows were applied.
func (s *CertificateService) BulkEdit(rows []models.Certificate) (int, error) {
	applied := make([]models.Certificate, 0, len(rows))
	for _, row := range rows {
		if row.ID == 0 || row.Title == "" || row.Image == "" {
			continue
		}
		applied = append(applied, row)
	}
	if err := s.repo.BulkUpdate(applied); err != nil {
		return 0, err
	}
	invalidateHome(s.cache)
	return len(applied), nil
}
