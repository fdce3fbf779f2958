package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rentify_backend/internal/auth"
	"rentify_backend/internal/services"
	"rentify_backend/internal/services/dto"
	"rentify_backend/internal/validator"
	"rentify_backend/pkg/contextkeys"
)

var testSecret = []byte("handler-test-secret")

// stubUserService implements services.UserService with pluggable behavior.
// Unset functions panic, so every test declares the calls it expects.
type stubUserService struct {
	registerFn       func(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	loginFn          func(req *dto.LoginRequest) (*dto.AuthResponse, error)
	forgotPasswordFn func(email string) error
	resetPasswordFn  func(req *dto.ResetPasswordRequest) error
	getUserFn        func(userID string) (*dto.UserResponse, error)
}

var _ services.UserService = (*stubUserService)(nil)

func (s *stubUserService) Register(_ *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return s.registerFn(req)
}

func (s *stubUserService) Login(_ *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return s.loginFn(req)
}

func (s *stubUserService) ForgotPassword(_ *gorm.DB, email string) error {
	return s.forgotPasswordFn(email)
}

func (s *stubUserService) ResetPassword(_ *gorm.DB, req *dto.ResetPasswordRequest) error {
	return s.resetPasswordFn(req)
}

func (s *stubUserService) GetUser(_ *gorm.DB, userID string) (*dto.UserResponse, error) {
	return s.getUserFn(userID)
}

type stubPropertyService struct {
	postPropertyFn     func(ownerID string, req *dto.PostPropertyRequest) (*dto.PropertyResponse, error)
	getPropertiesFn    func(ownerID string) ([]*dto.PropertyResponse, error)
	deletePropertyFn   func(callerID, propertyID string) error
	getPropertyByIDFn  func(propertyID string) (*dto.PublicPropertyResponse, error)
	updatePropertyFn   func(callerID, propertyID string, req *dto.UpdatePropertyRequest) (*dto.PropertyResponse, error)
	filterPropertiesFn func(req *dto.FilterPropertiesRequest) ([]*dto.FilteredPropertyResponse, error)
	sendOwnerInfoFn    func(req *dto.SendOwnerInfoRequest) error
	toggleLikeFn       func(req *dto.ToggleLikeRequest) (*dto.PropertyResponse, bool, error)
	getWatchlistFn     func(userID string) ([]*dto.PropertyResponse, error)
}

var _ services.PropertyService = (*stubPropertyService)(nil)

func (s *stubPropertyService) PostProperty(_ *gorm.DB, ownerID string, req *dto.PostPropertyRequest) (*dto.PropertyResponse, error) {
	return s.postPropertyFn(ownerID, req)
}

func (s *stubPropertyService) GetProperties(_ *gorm.DB, ownerID string) ([]*dto.PropertyResponse, error) {
	return s.getPropertiesFn(ownerID)
}

func (s *stubPropertyService) DeleteProperty(_ *gorm.DB, callerID, propertyID string) error {
	return s.deletePropertyFn(callerID, propertyID)
}

func (s *stubPropertyService) GetPropertyByID(_ *gorm.DB, propertyID string) (*dto.PublicPropertyResponse, error) {
	return s.getPropertyByIDFn(propertyID)
}

func (s *stubPropertyService) UpdateProperty(_ *gorm.DB, callerID, propertyID string, req *dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	return s.updatePropertyFn(callerID, propertyID, req)
}

func (s *stubPropertyService) FilterProperties(_ *gorm.DB, req *dto.FilterPropertiesRequest) ([]*dto.FilteredPropertyResponse, error) {
	return s.filterPropertiesFn(req)
}

func (s *stubPropertyService) SendOwnerInfo(_ *gorm.DB, req *dto.SendOwnerInfoRequest) error {
	return s.sendOwnerInfoFn(req)
}

func (s *stubPropertyService) ToggleLike(_ *gorm.DB, req *dto.ToggleLikeRequest) (*dto.PropertyResponse, bool, error) {
	return s.toggleLikeFn(req)
}

func (s *stubPropertyService) GetWatchlist(_ *gorm.DB, userID string) ([]*dto.PropertyResponse, error) {
	return s.getWatchlistFn(userID)
}

// newTestRouter mounts the handlers under /api/v1 the way the app does,
// with a stand-in database handle injected per request.
func newTestRouter(userSvc services.UserService, propertySvc services.PropertyService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(string(contextkeys.DBContextKey), &gorm.DB{})
		c.Next()
	})

	base := NewBaseHandler(validator.New())
	api := router.Group("/api/v1")
	if userSvc != nil {
		NewUserHandler(base, userSvc, testSecret, 3600).RegisterRoutes(api)
	}
	if propertySvc != nil {
		NewPropertyHandler(base, propertySvc, testSecret).RegisterRoutes(api)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: token})
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func newBearerRequest(t *testing.T, method, path, token string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
