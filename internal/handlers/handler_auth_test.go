package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wirebank/ledger/internal/apperrors"
	"github.com/wirebank/ledger/internal/core/domain"
	"github.com/wirebank/ledger/internal/dto"
	"github.com/wirebank/ledger/internal/platform/config"
	"github.com/wirebank/ledger/internal/utils"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockUserSvc *MockUserService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.mockUserSvc = new(MockUserService)

	cfg := &config.Config{
		JWTSecret:         testJWTSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test",
	}
	h := NewAuthHandler(suite.mockUserSvc, cfg)

	suite.router = gin.New()
	auth := suite.router.Group("/api/v1/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
}

func (suite *AuthHandlerTestSuite) performRequest(path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	user := &domain.User{Username: "alice", FullName: "Alice Example", CreatedAt: time.Now()}
	suite.mockUserSvc.On("Register", mock.Anything, mock.AnythingOfType("dto.RegisterRequest")).
		Return(user, nil).Once()

	w := suite.performRequest("/api/v1/auth/register",
		gin.H{"username": "alice", "password": "alicepass", "full_name": "Alice Example"})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("alice", resp.Username)
	// The credential hash must never appear on the wire.
	suite.NotContains(w.Body.String(), "password")
	suite.mockUserSvc.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateUsername() {
	suite.mockUserSvc.On("Register", mock.Anything, mock.AnythingOfType("dto.RegisterRequest")).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.performRequest("/api/v1/auth/register",
		gin.H{"username": "alice", "password": "alicepass"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *AuthHandlerTestSuite) TestRegister_ShortPasswordRejectedByBinding() {
	w := suite.performRequest("/api/v1/auth/register",
		gin.H{"username": "alice", "password": "short"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserSvc.AssertNotCalled(suite.T(), "Register")
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	user := &domain.User{Username: "alice"}
	suite.mockUserSvc.On("Authenticate", mock.Anything, "alice", "alicepass").
		Return(user, nil).Once()

	w := suite.performRequest("/api/v1/auth/login",
		gin.H{"username": "alice", "password": "alicepass"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("bearer", resp.TokenType)

	// The issued token must verify against the same secret and name the user.
	claims, err := utils.ParseAndValidateJWT(resp.AccessToken, testJWTSecret)
	suite.Require().NoError(err)
	suite.Equal("alice", claims.Subject)
}

func (suite *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.mockUserSvc.On("Authenticate", mock.Anything, "alice", "wrongpass").
		Return(nil, apperrors.ErrInvalidCredentials).Once()

	w := suite.performRequest("/api/v1/auth/login",
		gin.H{"username": "alice", "password": "wrongpass"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	var resp ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Invalid username or password", resp.Error)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
