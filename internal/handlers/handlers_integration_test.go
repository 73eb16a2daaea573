package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"portfolio/internal/handlers"
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubMailer records sends and can be told to fail.
type stubMailer struct {
	err  error
	sent []models.ContactMessage
}

func (m *stubMailer) Send(message models.ContactMessage) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, message)
	return nil
}

type testApp struct {
	app     *fiber.App
	db      *gorm.DB
	mailer  *stubMailer
	docsDir string
}

// setupApp wires the whole service against an in-memory SQLite
// database, mirroring the production wiring in main.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Education{}, &models.Experience{}, &models.Project{},
		&models.Certificate{}, &models.Tool{}, &models.User{},
	))

	docsDir := t.TempDir()
	mailStub := &stubMailer{}
	pageCache := cache.New(time.Minute, time.Minute)

	educationRepo := repositories.NewGORMEducationRepository(db)
	experienceRepo := repositories.NewGORMExperienceRepository(db)
	projectRepo := repositories.NewGORMProjectRepository(db)
	certificateRepo := repositories.NewGORMCertificateRepository(db)
	toolRepo := repositories.NewGORMToolRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	educationService := services.NewEducationService(educationRepo, pageCache)
	experienceService := services.NewExperienceService(experienceRepo, pageCache)
	projectService := services.NewProjectService(projectRepo, pageCache, docsDir, "/static/documents")
	certificateService := services.NewCertificateService(certificateRepo, pageCache)
	toolService := services.NewToolService(toolRepo, pageCache)
	authService := services.NewAuthService(userRepo, "test_jwt_secret")
	contactService := services.NewContactService(mailStub)
	homeService := services.NewHomeService(
		educationRepo, experienceRepo, projectRepo, certificateRepo, toolRepo,
		pageCache, time.Date(2018, 4, 1, 0, 0, 0, 0, time.UTC),
	)

	app := fiber.New()

	handlers.NewHomeHandler(homeService).RegisterRoutes(app)
	projectHandler := handlers.NewProjectHandler(projectService)
	projectHandler.RegisterPublicRoutes(app)
	handlers.NewContactHandler(contactService).RegisterRoutes(app)
	handlers.NewAuthHandler(authService).RegisterRoutes(app)

	app.Use(handlers.AdminPathPrefixes, middleware.AuthRequired(authService, false))
	handlers.NewEducationHandler(educationService).RegisterRoutes(app)
	handlers.NewExperienceHandler(experienceService).RegisterRoutes(app)
	projectHandler.RegisterRoutes(app)
	handlers.NewCertificateHandler(certificateService).RegisterRoutes(app)
	handlers.NewToolHandler(toolService).RegisterRoutes(app)

	// Registered after the guard, like in main; it must stay public.
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	return &testApp{app: app, db: db, mailer: mailStub, docsDir: docsDir}
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// adminToken registers an admin account and returns its token.
func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/register", "", map[string]string{
		"name":     "Admin",
		"email":    "admin@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterLoginAndFailureMessages(t *testing.T) {
	ta := setupApp(t)

	token := adminToken(t, ta.app)
	assert.NotEmpty(t, token)

	// Duplicate registration creates no second row and points at login
	resp := doJSON(t, ta.app, http.MethodPost, "/register", "", map[string]string{
		"name": "Imposter", "email": "admin@example.com", "password": "hunter22",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var conflictBody map[string]interface{}
	decodeBody(t, resp, &conflictBody)
	assert.Contains(t, conflictBody["message"], "log in instead")

	var count int64
	require.NoError(t, ta.db.Model(&models.User{}).Where("email = ?", "admin@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Wrong password and unknown email produce distinct messages, no token
	resp = doJSON(t, ta.app, http.MethodPost, "/login", "", map[string]string{
		"email": "admin@example.com", "password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var wrongPass map[string]interface{}
	decodeBody(t, resp, &wrongPass)
	assert.Equal(t, "Password incorrect, please try again.", wrongPass["message"])
	assert.NotContains(t, wrongPass, "token")

	resp = doJSON(t, ta.app, http.MethodPost, "/login", "", map[string]string{
		"email": "nobody@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var unknown map[string]interface{}
	decodeBody(t, resp, &unknown)
	assert.Equal(t, "This email does not exist!", unknown["message"])
	assert.NotContains(t, unknown, "token")

	// Correct credentials log in
	resp = doJSON(t, ta.app, http.MethodPost, "/login", "", map[string]string{
		"email": "admin@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestAdminRoutesRequireToken(t *testing.T) {
	ta := setupApp(t)

	paths := []struct{ method, path string }{
		{http.MethodPost, "/update-education"},
		{http.MethodPost, "/update-experience"},
		{http.MethodPost, "/update-portfolio"},
		{http.MethodPost, "/update-certificate"},
		{http.MethodPost, "/update-tools"},
		{http.MethodPost, "/save-certificate-edits"},
		{http.MethodPost, "/save-tool-edits"},
		{http.MethodGet, "/edit-certificates"},
		{http.MethodGet, "/edit-tools"},
	}
	for _, p := range paths {
		resp := doJSON(t, ta.app, p.method, p.path, "", map[string]string{})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", p.method, p.path)
		resp.Body.Close()
	}
}

func TestGuardCoversOnlyAdminPaths(t *testing.T) {
	ta := setupApp(t)

	// Health stays reachable without a token
	resp := doJSON(t, ta.app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Unmatched paths are a plain 404, not an auth failure
	resp = doJSON(t, ta.app, http.MethodGet, "/no-such-path", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Public reads are open too
	resp = doJSON(t, ta.app, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestEducationCreateAndUniqueness(t *testing.T) {
	ta := setupApp(t)
	token := adminToken(t, ta.app)

	entry := map[string]interface{}{
		"exam": "B.Tech", "institute": "Tech Institute", "university": "State University",
		"year": "2014-2018", "marks": 8.4, "description": "Computer science",
	}
	resp := doJSON(t, ta.app, http.MethodPost, "/update-education", token, entry)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// A second row with the same exam is rejected, not silently inserted
	resp = doJSON(t, ta.app, http.MethodPost, "/update-education", token, entry)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	var count int64
	require.NoError(t, ta.db.Model(&models.Education{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Missing required fields come back as per-field errors
	resp = doJSON(t, ta.app, http.MethodPost, "/update-education", token, map[string]interface{}{
		"exam": "M.Tech",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Validation failed", body["message"])
	errs, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, errs, "Institute")
}

func TestExperiencePresentOverridesExitDate(t *testing.T) {
	ta := setupApp(t)
	token := adminToken(t, ta.app)

	resp := doJSON(t, ta.app, http.MethodPost, "/update-experience", token, map[string]interface{}{
		"company": "Acme", "position": "Engineer",
		"joining_date": "2021-01-04", "exit_date": "2023-06-30",
		"present": true, "job_description": "Build things",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var stored models.Experience
	require.NoError(t, ta.db.First(&stored, "company = ?", "Acme").Error)
	assert.True(t, stored.Present)
	assert.Nil(t, stored.ExitDate)

	// Editing with present still set keeps the exit date cleared
	resp = doJSON(t, ta.app, http.MethodPost, fmt.Sprintf("/edit-experience/%d", stored.ID), token, map[string]interface{}{
		"company": "Acme", "position": "Senior Engineer",
		"joining_date": "2021-01-04", "exit_date": "2024-01-15",
		"present": true, "job_description": "Build bigger things",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	require.NoError(t, ta.db.First(&stored, stored.ID).Error)
	assert.Equal(t, "Senior Engineer", stored.Position)
	assert.Nil(t, stored.ExitDate)

	// Clearing present stores the submitted exit date
	resp = doJSON(t, ta.app, http.MethodPost, fmt.Sprintf("/edit-experience/%d", stored.ID), token, map[string]interface{}{
		"company": "Acme", "position": "Senior Engineer",
		"joining_date": "2021-01-04", "exit_date": "2024-01-15",
		"present": false, "job_description": "Built bigger things",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	require.NoError(t, ta.db.First(&stored, stored.ID).Error)
	require.NotNil(t, stored.ExitDate)
	assert.Equal(t, "2024-01-15", stored.ExitDate.Format("2006-01-02"))
}

func TestCertificateBulkEditSkipsIncompleteRow(t *testing.T) {
	ta := setupApp(t)
	token := adminToken(t, ta.app)

	seed := []models.Certificate{
		{Title: "Cert One", Image: "https://img.example.com/1.png"},
		{Title: "Cert Two", Image: "https://img.example.com/2.png"},
		{Title: "Cert Three", Image: "https://img.example.com/3.png"},
	}
	for i := range seed {
		require.NoError(t, ta.db.Create(&seed[i]).Error)
	}

	resp := doJSON(t, ta.app, http.MethodPost, "/save-certificate-edits", token, map[string]interface{}{
		"rows": []map[string]interface{}{
			{"id": seed[0].ID, "title": "Cert One Renamed", "image": "https://img.example.com/1-new.png"},
			{"id": seed[1].ID, "title": "Cert Two Renamed", "image": "https://img.example.com/2-new.png"},
			{"id": seed[2].ID, "title": "Cert Three Renamed", "image": ""},
		},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, float64(2), body["applied"])
	assert.Equal(t, float64(1), body["skipped"])

	var rows []models.Certificate
	require.NoError(t, ta.db.Order("id").Find(&rows).Error)
	require.Len(t, rows, 3)
	assert.Equal(t, "Cert One Renamed", rows[0].Title)
	assert.Equal(t, "Cert Two Renamed", rows[1].Title)
	// The incomplete row is untouched
	assert.Equal(t, "Cert Three", rows[2].Title)
	assert.Equal(t, "https://img.example.com/3.png", rows[2].Image)
}

func TestProjectDetailsDocumentLookup(t *testing.T) {
	ta := setupApp(t)
	token := adminToken(t, ta.app)

	resp := doJSON(t, ta.app, http.MethodPost, "/update-portfolio", token, map[string]interface{}{
		"title":       "Churn Prediction Model",
		"category":    "Data_Science",
		"image":       "https://img.example.com/churn.png",
		"description": "Predicting churn",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var project models.Project
	require.NoError(t, ta.db.First(&project, "title = ?", "Churn Prediction Model").Error)

	// No document on disk yet
	resp = doJSON(t, ta.app, http.MethodGet, fmt.Sprintf("/project_details/%d", project.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Drop the expected file and the lookup resolves
	docPath := filepath.Join(ta.docsDir, "Churn_Prediction_Model.pdf")
	require.NoError(t, os.WriteFile(docPath, []byte("%PDF-1.4"), 0o644))

	resp = doJSON(t, ta.app, http.MethodGet, fmt.Sprintf("/project_details/%d", project.ID), "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "/static/documents/Churn_Prediction_Model.pdf", body["file_url"])

	// Unknown project id is a JSON 404
	resp = doJSON(t, ta.app, http.MethodGet, "/project_details/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// An off-list category never validates
	resp = doJSON(t, ta.app, http.MethodPost, "/update-portfolio", token, map[string]interface{}{
		"title":       "Second Project",
		"category":    "Underwater_Basket_Weaving",
		"image":       "https://img.example.com/x.png",
		"description": "Nope",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestContactFormOutcomes(t *testing.T) {
	ta := setupApp(t)

	message := map[string]string{
		"name": "Visitor", "email": "visitor@example.com",
		"subject": "Hello", "message": "Nice portfolio",
	}

	resp := doJSON(t, ta.app, http.MethodPost, "/contact", "", message)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var okBody map[string]interface{}
	decodeBody(t, resp, &okBody)
	assert.Equal(t, "Message sent successfully!", okBody["message"])
	assert.NotEmpty(t, okBody["reference"])
	require.Len(t, ta.mailer.sent, 1)
	assert.Equal(t, "visitor@example.com", ta.mailer.sent[0].Email)

	// A transport failure is visible to the sender, not swallowed
	ta.mailer.err = fmt.Errorf("smtp: connection refused")
	resp = doJSON(t, ta.app, http.MethodPost, "/contact", "", message)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	resp.Body.Close()
}

func TestHomePayload(t *testing.T) {
	ta := setupApp(t)
	token := adminToken(t, ta.app)

	resp := doJSON(t, ta.app, http.MethodPost, "/update-tools", token, map[string]string{
		"title": "Docker", "image": "https://img.example.com/docker.png",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, ta.app, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var page map[string]interface{}
	decodeBody(t, resp, &page)
	tools, ok := page["tools"].([]interface{})
	require.True(t, ok)
	assert.Len(t, tools, 1)
	assert.Regexp(t, `^\d+ Years & \d+ Months$`, page["tenure"])
}
