package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"lp-maker/lpmaker/database"
	"lp-maker/lpmaker/services"
)

type MockAuthService struct{}

func (m *MockAuthService) Login(db *database.Database, email, password string) (string, error) {
	return "", services.ErrInvalidCredentials
}

func (m *MockAuthService) ValidateToken(tokenString string) (*services.JWTClaims, error) {
	if tokenString == "valid-token" {
		return &services.JWTClaims{UserID: testOwnerID}, nil
	}
	return nil, services.ErrInvalidToken
}

func (m *MockAuthService) HashPassword(password string) (string, error) {
	return password, nil
}

func (m *MockAuthService) ComparePasswords(hashedPassword, password string) error {
	return nil
}

func setupPreviewRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	previewService := services.NewPreviewService(&database.Database{})
	RegisterPreviewRoutes(router, previewService, &MockAuthService{})
	return router
}

func TestPreviewRoute_RequiresToken(t *testing.T) {
	router := setupPreviewRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ws/preview?slug=aki", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPreviewRoute_RejectsInvalidToken(t *testing.T) {
	router := setupPreviewRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ws/preview?slug=aki&token=expired", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPreviewRoute_RequiresSlug(t *testing.T) {
	router := setupPreviewRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ws/preview?token=valid-token", nil)
	router.ServeHTTP(w, req)

	// Authenticated, but a preview connection is meaningless without a
	// page to watch.
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
