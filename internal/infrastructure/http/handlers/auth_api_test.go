package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/pkg/errors"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, cmd inbound.RegisterUserCommand) (*inbound.UserDTO, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.UserDTO), args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, cmd inbound.LoginCommand) (*inbound.SessionDTO, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.SessionDTO), args.Error(1)
}

func (m *mockUserService) Refresh(ctx context.Context, refreshToken string) (*inbound.SessionDTO, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.SessionDTO), args.Error(1)
}

func (m *mockUserService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	args := m.Called(ctx, tokenID, expiresAt)
	return args.Error(0)
}

func (m *mockUserService) GetProfile(ctx context.Context, userID int64) (*inbound.UserDTO, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.UserDTO), args.Error(1)
}

type AuthAPITestSuite struct {
	suite.Suite
	service *mockUserService
	handler *AuthAPIHandlers
}

func (s *AuthAPITestSuite) SetupTest() {
	s.service = new(mockUserService)
	s.handler = NewAuthAPIHandlers(s.service, zap.NewNop())
}

func TestAuthAPITestSuite(t *testing.T) {
	suite.Run(t, new(AuthAPITestSuite))
}

func (s *AuthAPITestSuite) post(handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func (s *AuthAPITestSuite) TestRegister_ValidPayload_ShouldReturn201() {
	s.service.On("Register", mock.Anything, inbound.RegisterUserCommand{
		Email:    "alex@example.com",
		Name:     "Alex",
		Password: "Sup3rSecret!",
	}).Return(&inbound.UserDTO{ID: 1, Email: "alex@example.com", Name: "Alex"}, nil)

	rec := s.post(s.handler.Register,
		`{"name":"Alex","email":"alex@example.com","password":"Sup3rSecret!"}`)

	s.Equal(http.StatusCreated, rec.Code)

	var resp struct {
		Success bool            `json:"success"`
		Data    inbound.UserDTO `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.Equal(int64(1), resp.Data.ID)
}

func (s *AuthAPITestSuite) TestRegister_InvalidEmail_ShouldReturn400() {
	rec := s.post(s.handler.Register,
		`{"name":"Alex","email":"not-an-email","password":"Sup3rSecret!"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.service.AssertNotCalled(s.T(), "Register")
}

func (s *AuthAPITestSuite) TestRegister_ShortPassword_ShouldReturn400() {
	rec := s.post(s.handler.Register,
		`{"name":"Alex","email":"alex@example.com","password":"short"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.service.AssertNotCalled(s.T(), "Register")
}

func (s *AuthAPITestSuite) TestRegister_DuplicateEmail_ShouldReturn409() {
	s.service.On("Register", mock.Anything, mock.Anything).
		Return(nil, errors.NewEmailAlreadyExistsError("alex@example.com"))

	rec := s.post(s.handler.Register,
		`{"name":"Alex","email":"alex@example.com","password":"Sup3rSecret!"}`)

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *AuthAPITestSuite) TestLogin_ValidCredentials_ShouldReturnSession() {
	s.service.On("Login", mock.Anything, inbound.LoginCommand{
		Email:    "alex@example.com",
		Password: "Sup3rSecret!",
	}).Return(&inbound.SessionDTO{
		User:        inbound.UserDTO{ID: 1, Email: "alex@example.com"},
		AccessToken: "token-value",
		TokenType:   "Bearer",
	}, nil)

	rec := s.post(s.handler.Login,
		`{"email":"alex@example.com","password":"Sup3rSecret!"}`)

	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data inbound.SessionDTO `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("token-value", resp.Data.AccessToken)
	s.Equal("Bearer", resp.Data.TokenType)
}

func (s *AuthAPITestSuite) TestLogin_BadCredentials_ShouldReturn401() {
	s.service.On("Login", mock.Anything, mock.Anything).
		Return(nil, errors.NewInvalidCredentialsError())

	rec := s.post(s.handler.Login,
		`{"email":"alex@example.com","password":"Wr0ngPass!"}`)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthAPITestSuite) TestLogout_WithoutToken_ShouldReturn401() {
	rec := s.post(s.handler.Logout, ``)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.service.AssertNotCalled(s.T(), "Logout")
}
