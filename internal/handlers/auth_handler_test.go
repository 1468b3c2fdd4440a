package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"budgetbuddy-api/internal/config"
	"budgetbuddy-api/internal/database"
	"budgetbuddy-api/internal/dto"
	"budgetbuddy-api/internal/repositories"
	"budgetbuddy-api/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	db      *database.DB
	echo    *echo.Echo
	handler *AuthHandler
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.echo = newTestEcho()

	userRepo := repositories.NewUserRepository(s.db.DB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(s.db.DB)

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	tokenService := services.NewTokenService(&config.JWTConfig{
		PrivateKey:           privateKey,
		PublicKey:            publicKey,
		Issuer:               "test-issuer",
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: 24 * time.Hour,
	})

	authService := services.NewAuthService(
		userRepo,
		refreshTokenRepo,
		services.NewPasswordService(4),
		tokenService,
		noopMetrics{},
		slog.Default(),
	)

	s.handler = NewAuthHandler(authService, userRepo)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AuthHandlerTestSuite) register() {
	c, rec := newJSONContext(s.echo, http.MethodPost, "/api/v1/auth/register",
		`{"email":"student@example.com","password":"password123","name":"Test Student"}`)

	s.Require().NoError(s.handler.Register(c))
	s.Require().Equal(http.StatusCreated, rec.Code)
}

func (s *AuthHandlerTestSuite) login() *dto.TokenResponse {
	c, rec := newJSONContext(s.echo, http.MethodPost, "/api/v1/auth/login",
		`{"email":"student@example.com","password":"password123"}`)

	s.Require().NoError(s.handler.Login(c))
	s.Require().Equal(http.StatusOK, rec.Code)

	var tokens dto.TokenResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &tokens))
	return &tokens
}

func (s *AuthHandlerTestSuite) TestRegister() {
	c, rec := newJSONContext(s.echo, http.MethodPost, "/api/v1/auth/register",
		`{"email":"student@example.com","password":"password123","name":"Test Student"}`)

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response struct {
		Data dto.UserProfileResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("student@example.com", response.Data.Email)
	s.Equal("Test Student", response.Data.Name)
	s.NotEmpty(response.Data.ID)
	s.NotContains(rec.Body.String(), "password")
}

func (s *AuthHandlerTestSuite) TestRegister_DuplicateEmail() {
	s.register()

	c, rec := newJSONContext(s.echo, http.MethodPost, "/api/v1/auth/register",
		`{"email":"student@example.com","password":"password123","name":"Test Student"}`)

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "USER_002")
}

func (s *AuthHandlerTestSuite) TestRegister_InvalidEmail() {
	c, _ := newJSONContext(s.echo, http.MethodPost, "/api/v1/auth/register",
		`{"email":"not-an-email","password":"password123","name":"Test Student"}`)

	// Validation errors bubble up to the error handler middleware
	s.Error(s.handler.Register(c))
}

func (s *AuthHandlerTestSuite) TestRegister_WeakPassword() {
	c, rec := newJSONContext(s.echo, http.MethodPost, "/api/v1/auth/register",
		`{"email":"student@example.com","password":"12345678","name":"Test Student"}`)

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *AuthHandlerTestSuite) TestLogin() {
	s.register()

	tokens := s.login()

	s.NotEmpty(tokens.AccessToken)
	s.NotEmpty(tokens.RefreshToken)
	s.Equal("Bearer", tokens.TokenType)
}

func (s *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	s.register()

	c, rec := newJSONContext(s.echo, http.MethodPost, "/api/v1/auth/login",
		`{"email":"student@example.com","password":"wrongpassword1"}`)

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_001")
}

func (s *AuthHandlerTestSuite) TestLogin_UnknownUser() {
	c, rec := newJSONContext(s.echo, http.MethodPost, "/api/v1/auth/login",
		`{"email":"nobody@example.com","password":"password123"}`)

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthHandlerTestSuite) TestRefreshToken() {
	s.register()
	tokens := s.login()

	c, rec := newJSONContext(s.echo, http.MethodPost, "/api/v1/auth/refresh",
		`{"refreshToken":"`+tokens.RefreshToken+`"}`)

	s.NoError(s.handler.RefreshToken(c))
	s.Equal(http.StatusOK, rec.Code)

	var refreshed dto.TokenResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &refreshed))
	s.NotEqual(tokens.RefreshToken, refreshed.RefreshToken)
}

func (s *AuthHandlerTestSuite) TestRefreshToken_Invalid() {
	c, rec := newJSONContext(s.echo, http.MethodPost, "/api/v1/auth/refresh",
		`{"refreshToken":"not-a-token"}`)

	s.NoError(s.handler.RefreshToken(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_006")
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.register()
	tokens := s.login()

	c, rec := newJSONContext(s.echo, http.MethodPost, "/api/v1/auth/logout", "")
	c.Request().Header.Set("Authorization", "Bearer "+tokens.AccessToken)

	s.NoError(s.handler.Logout(c))
	s.Equal(http.StatusOK, rec.Code)

	// The refresh token must no longer be usable
	c, rec = newJSONContext(s.echo, http.MethodPost, "/api/v1/auth/refresh",
		`{"refreshToken":"`+tokens.RefreshToken+`"}`)
	s.NoError(s.handler.RefreshToken(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthHandlerTestSuite) TestLogout_MissingHeader() {
	c, rec := newJSONContext(s.echo, http.MethodPost, "/api/v1/auth/logout", "")

	s.NoError(s.handler.Logout(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *AuthHandlerTestSuite) TestGetProfile() {
	user := database.CreateTestUser(s.T(), s.db, "student@example.com")

	c, rec := newJSONContext(s.echo, http.MethodGet, "/api/v1/auth/me", "")
	authenticate(c, user.ID)

	s.NoError(s.handler.GetProfile(c))
	s.Equal(http.StatusOK, rec.Code)

	var profile dto.UserProfileResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &profile))
	s.Equal(user.ID.String(), profile.ID)
	s.Equal("student@example.com", profile.Email)
}

func (s *AuthHandlerTestSuite) TestGetProfile_Unauthenticated() {
	c, rec := newJSONContext(s.echo, http.MethodGet, "/api/v1/auth/me", "")

	s.NoError(s.handler.GetProfile(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
