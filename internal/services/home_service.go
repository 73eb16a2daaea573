package services

import (
	"fmt"
	"time"

	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/patrickmn/go-cache"
)

// homeCacheKey is the single cache entry for the composed homepage
// payload. Every mutating service deletes it on a successful write.
const homeCacheKey = "homepage"

// invalidateHome drops the cached homepage payload. A nil cache is
// allowed so services can run uncached in tests.
func invalidateHome(c *cache.Cache) {
	if c != nil {
		c.Delete(homeCacheKey)
	}
}

// HomePage is the composed public homepage payload: the five entity
// lists plus the derived tenure string.
type HomePage struct {
	Qualifications []models.Education   `json:"qualifications"`
	Experiences    []models.Experience  `json:"experiences"`
	Projects       []models.Project     `json:"projects"`
	Certificates   []models.Certificate `json:"certificates"`
	Tools          []models.Tool        `json:"tools"`
	Tenure         string               `json:"tenure"`
}

// HomeService composes the public homepage from the five entity
// repositories. The lists are fetched independently; nothing joins them.
type HomeService struct {
	educationRepo   repositories.EducationRepository
	experienceRepo  repositories.ExperienceRepository
	projectRepo     repositories.ProjectRepository
	certificateRepo repositories.CertificateRepository
	toolRepo        repositories.ToolRepository
	cache           *cache.Cache
	careerStart     time.Time
	now             func() time.Time
}

// NewHomeService creates a new HomeService.
func NewHomeService(
	educationRepo repositories.EducationRepository,
	experienceRepo repositories.ExperienceRepository,
	projectRepo repositories.ProjectRepository,
	certificateRepo repositories.CertificateRepository,
	toolRepo repositories.ToolRepository,
	pageCache *cache.Cache,
	careerStart time.Time,
) *HomeService {
	return &HomeService{
		educationRepo:   educationRepo,
		experienceRepo:  experienceRepo,
		projectRepo:     projectRepo,
		certificateRepo: certificateRepo,
		toolRepo:        toolRepo,
		cache:           pageCache,
		careerStart:     careerStart,
		now:             time.Now,
	}
}

// GetHomePage returns the composed homepage payload, serving a cached
// copy when one is available.
func (s *HomeService) GetHomePage() (*HomePage, error) {
	if s.cache != nil {
		if cached, found := s.cache.Get(homeCacheKey); found {
			return cached.(*HomePage), nil
		}
	}

	qualifications, err := s.educationRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load qualifications: %w", err)
	}
	experiences, err := s.experienceRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load experiences: %w", err)
	}
	projects, err := s.projectRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	certificates, err := s.certificateRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load certificates: %w", err)
	}
	tools, err := s.toolRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load tools: %w", err)
	}

	page := &HomePage{
		Qualifications: qualifications,
		Experiences:    experiences,
		Projects:       projects,
		Certificates:   certificates,
		Tools:          tools,
		Tenure:         TenureString(s.careerStart, s.now()),
	}

	if s.cache != nil {
		s.cache.Set(homeCacheKey, page, cache.DefaultExpiration)
	}
	return page, nil
}

// TenureString renders the elapsed time between start and now as
// "N Years & M Months". Months are truncated on year/month boundaries
// only; days within the month are ignored.
func TenureString(start, now time.Time) string {
	months := (now.Year()-start.Year())*12 + int(now.Month()) - int(start.Month())
	if months < 0 {
		months = 0
	}
	return fmt.Sprintf("%d Years & %d Months", months/12, months%12)
}
