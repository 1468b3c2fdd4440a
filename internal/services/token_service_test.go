package services

import (
	"crypto/rsa"
	"testing"
	"time"

	"budgetbuddy-api/internal/config"
	"budgetbuddy-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	privateKey      *rsa.PrivateKey
	publicKey       *rsa.PublicKey
	service         TokenServiceInterface
	issuer          string
	accessDuration  time.Duration
	refreshDuration time.Duration
}

// SetupTest runs before each test
func (s *TokenServiceTestSuite) SetupTest() {
	var err error
	s.privateKey, s.publicKey, err = config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.issuer = "test-issuer"
	s.accessDuration = 24 * time.Hour
	s.refreshDuration = 7 * 24 * time.Hour

	s.service = NewTokenService(&config.JWTConfig{
		PrivateKey:           s.privateKey,
		PublicKey:            s.publicKey,
		Issuer:               s.issuer,
		AccessTokenDuration:  s.accessDuration,
		RefreshTokenDuration: s.refreshDuration,
	})
}

// TestTokenServiceSuite runs the test suite
func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) testUser() *models.User {
	return &models.User{
		ID:    uuid.New(),
		Email: "test@example.com",
		Name:  "Test User",
	}
}

// Test GenerateAccessToken
func (s *TokenServiceTestSuite) TestGenerateAccessToken() {
	token, expiresAt, err := s.service.GenerateAccessToken(s.testUser())
	s.NoError(err)
	s.NotEmpty(token)
	s.True(expiresAt.After(time.Now()))
	s.True(expiresAt.Before(time.Now().Add(25 * time.Hour)))
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken_NilUser() {
	_, _, err := s.service.GenerateAccessToken(nil)
	s.Error(err)
}

// Test GenerateRefreshToken
func (s *TokenServiceTestSuite) TestGenerateRefreshToken() {
	userID := uuid.New()
	token, expiresAt, err := s.service.GenerateRefreshToken(userID)
	s.NoError(err)
	s.NotEmpty(token)
	s.True(expiresAt.After(time.Now()))
	s.True(expiresAt.Before(time.Now().Add(8 * 24 * time.Hour)))
}

func (s *TokenServiceTestSuite) TestGenerateRefreshToken_NilUserID() {
	_, _, err := s.service.GenerateRefreshToken(uuid.Nil)
	s.Error(err)
}

// Test ValidateAccessToken
func (s *TokenServiceTestSuite) TestValidateAccessToken() {
	user := s.testUser()
	token, _, err := s.service.GenerateAccessToken(user)
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(token)
	s.NoError(err)
	s.Equal(user.ID.String(), claims.UserID)
	s.Equal(user.Email, claims.Email)
	s.Equal(TokenTypeAccess, claims.TokenType)
	s.Equal(s.issuer, claims.Issuer)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_RejectsRefreshToken() {
	token, _, err := s.service.GenerateRefreshToken(uuid.New())
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidTokenType)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Empty() {
	_, err := s.service.ValidateAccessToken("")
	s.ErrorIs(err, ErrEmptyToken)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Garbage() {
	_, err := s.service.ValidateAccessToken("not.a.jwt")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_WrongIssuer() {
	otherService := NewTokenService(&config.JWTConfig{
		PrivateKey:           s.privateKey,
		PublicKey:            s.publicKey,
		Issuer:               "other-issuer",
		AccessTokenDuration:  s.accessDuration,
		RefreshTokenDuration: s.refreshDuration,
	})

	token, _, err := otherService.GenerateAccessToken(s.testUser())
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidIssuer)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Expired() {
	expiredService := NewTokenService(&config.JWTConfig{
		PrivateKey:           s.privateKey,
		PublicKey:            s.publicKey,
		Issuer:               s.issuer,
		AccessTokenDuration:  -time.Hour,
		RefreshTokenDuration: s.refreshDuration,
	})

	token, _, err := expiredService.GenerateAccessToken(s.testUser())
	s.Require().NoError(err)

	_, err = s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrExpiredToken)
}

// Test ValidateRefreshToken
func (s *TokenServiceTestSuite) TestValidateRefreshToken() {
	userID := uuid.New()
	token, _, err := s.service.GenerateRefreshToken(userID)
	s.Require().NoError(err)

	claims, err := s.service.ValidateRefreshToken(token)
	s.NoError(err)
	s.Equal(userID.String(), claims.UserID)
	s.Equal(TokenTypeRefresh, claims.TokenType)
}

// Test ExtractTokenFromHeader
func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	testCases := []struct {
		name      string
		header    string
		expected  string
		expectErr bool
	}{
		{"Valid bearer", "Bearer abc123", "abc123", false},
		{"Lowercase bearer", "bearer abc123", "abc123", false},
		{"Empty header", "", "", true},
		{"Missing token", "Bearer ", "", true},
		{"Wrong scheme", "Basic abc123", "", true},
		{"No scheme", "abc123", "", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			token, err := s.service.ExtractTokenFromHeader(tc.header)
			if tc.expectErr {
				s.ErrorIs(err, ErrInvalidAuthHeader)
			} else {
				s.NoError(err)
				s.Equal(tc.expected, token)
			}
		})
	}
}
