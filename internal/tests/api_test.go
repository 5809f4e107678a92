// internal/tests/api_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/curioshop/curios-backend/internal/config"
	"github.com/curioshop/curios-backend/internal/models"
	"github.com/curioshop/curios-backend/internal/router"
)

type APITestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (s *APITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:api_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}))
	s.db = db

	cfg := &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
		Storage: config.StorageConfig{
			LocalUploadsDir: s.T().TempDir(),
			LocalUploadsURL: "http://localhost:8080/uploads",
			MaxUploadBytes:  1024 * 1024,
		},
	}

	s.router = router.Initialize(db, cfg)

	// Staff account, the kind normally created by the seeder
	admin := &models.User{Username: "admin", Email: "admin@example.com", IsStaff: true, IsActive: true}
	s.Require().NoError(admin.SetPassword("admin-pass-1"))
	s.Require().NoError(s.db.Create(admin).Error)
}

func (s *APITestSuite) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *APITestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var payload map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func (s *APITestSuite) login(email, password string) string {
	w := s.request(http.MethodPost, "/accounts/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	s.Require().Equal(http.StatusOK, w.Code)

	payload := s.decode(w)
	s.Require().NotEmpty(payload["access"])
	s.Require().NotEmpty(payload["refresh"])
	return payload["access"].(string)
}

func (s *APITestSuite) TestShopFlow() {
	// Register an ordinary user
	w := s.request(http.MethodPost, "/accounts/register", "", map[string]string{
		"email":    "a@x.com",
		"username": "a_customer",
		"password": "p1p1p1p1",
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	registered := s.decode(w)
	s.Equal("a@x.com", registered["email"])
	s.NotContains(registered, "password")
	s.NotContains(w.Body.String(), "p1p1p1p1")

	// Log in with the same credentials
	customerToken := s.login("a@x.com", "p1p1p1p1")

	// Wrong password is rejected
	w = s.request(http.MethodPost, "/accounts/login", "", map[string]string{
		"email":    "a@x.com",
		"password": "wrong",
	})
	s.Equal(http.StatusUnauthorized, w.Code)

	// A non-admin token cannot create products
	w = s.request(http.MethodPost, "/curios/create", customerToken, map[string]interface{}{
		"name": "Brass Compass", "price": 19.99, "quantity": 3,
	})
	s.Equal(http.StatusForbidden, w.Code)

	// Neither can an anonymous caller
	w = s.request(http.MethodPost, "/curios/create", "", map[string]interface{}{
		"name": "Brass Compass", "price": 19.99, "quantity": 3,
	})
	s.Equal(http.StatusForbidden, w.Code)

	// The staff account can
	adminToken := s.login("admin@example.com", "admin-pass-1")
	w = s.request(http.MethodPost, "/curios/create", adminToken, map[string]interface{}{
		"name": "Brass Compass", "description": "points north", "price": 19.99, "quantity": 3,
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	product := s.decode(w)
	productID := uint(product["id"].(float64))

	// Listing is open to anonymous callers and paginated
	w = s.request(http.MethodGet, "/curios/list", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	page := s.decode(w)
	s.EqualValues(1, page["count"])
	s.Nil(page["next"])
	s.Nil(page["previous"])
	s.Len(page["results"], 1)

	// A page past the end does not exist
	w = s.request(http.MethodGet, "/curios/list?page=5", "", nil)
	s.Require().Equal(http.StatusNotFound, w.Code)
	s.Equal("Invalid page.", s.decode(w)["detail"])

	// Partial update touches only the supplied field
	w = s.request(http.MethodPatch, fmt.Sprintf("/curios/update/%d", productID), adminToken, map[string]interface{}{
		"price": 9.99,
	})
	s.Require().Equal(http.StatusOK, w.Code)
	updated := s.decode(w)
	s.EqualValues(9.99, updated["price"])
	s.Equal("Brass Compass", updated["name"])
	s.EqualValues(3, updated["quantity"])

	// Orders require authentication
	w = s.request(http.MethodPost, "/orders/create", "", map[string]interface{}{
		"product": productID, "quantity": 1,
	})
	s.Equal(http.StatusUnauthorized, w.Code)

	// The owning user is forced to the caller regardless of input
	w = s.request(http.MethodPost, "/orders/create", customerToken, map[string]interface{}{
		"user": 9999, "product": productID, "quantity": 2,
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	order := s.decode(w)
	s.EqualValues(registered["id"], order["user"])
	s.EqualValues(productID, order["product"])

	// Order listing is scoped to the caller
	w = s.request(http.MethodGet, "/orders/list", adminToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.EqualValues(0, s.decode(w)["count"])

	w = s.request(http.MethodGet, "/orders/list", customerToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.EqualValues(1, s.decode(w)["count"])
}

func (s *APITestSuite) TestRefreshTokenDoesNotAuthenticate() {
	w := s.request(http.MethodPost, "/accounts/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "admin-pass-1",
	})
	s.Require().Equal(http.StatusOK, w.Code)
	tokens := s.decode(w)
	refresh := tokens["refresh"].(string)

	// A refresh token presented as a bearer credential must be rejected,
	// not treated as an anonymous-but-authenticated caller.
	w = s.request(http.MethodGet, "/orders/list", refresh, nil)
	s.Require().Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Given token not valid for any token type.", s.decode(w)["detail"])
}

func (s *APITestSuite) TestDuplicateRegistrationDetail() {
	body := map[string]string{
		"email":    "dup@x.com",
		"username": "dup_user",
		"password": "p3p3p3p3",
	}
	w := s.request(http.MethodPost, "/accounts/register", "", body)
	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.request(http.MethodPost, "/accounts/register", "", body)
	s.Require().Equal(http.StatusBadRequest, w.Code)
	s.Equal("user with this email already exists", s.decode(w)["detail"])
}

func (s *APITestSuite) TestMerchantRegistration() {
	w := s.request(http.MethodPost, "/accounts/merchants/register", "", map[string]string{
		"email":    "m@x.com",
		"username": "a_merchant",
		"password": "p2p2p2p2",
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	payload := s.decode(w)
	s.Equal(true, payload["is_merchant"])
	s.Equal(false, payload["is_staff"])
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
