package repositories

import (
	"testing"
	"time"

	"budgetbuddy-api/internal/database"
	"budgetbuddy-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestRefreshTokenRepository(t *testing.T) {
	suite.Run(t, new(RefreshTokenRepositorySuite))
}

type RefreshTokenRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo RefreshTokenRepositoryInterface
	user *models.User
}

func (s *RefreshTokenRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewRefreshTokenRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "tokens@example.com")
}

func (s *RefreshTokenRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *RefreshTokenRepositorySuite) createToken(hash string, expiresAt time.Time) *models.RefreshToken {
	token := &models.RefreshToken{
		UserID:    s.user.ID,
		TokenHash: hash,
		ExpiresAt: expiresAt,
	}
	s.Require().NoError(s.repo.Create(token))
	return token
}

func (s *RefreshTokenRepositorySuite) TestRefreshTokenRepository_GetByTokenHash() {
	token := s.createToken("hash_abc", time.Now().Add(time.Hour))

	found, err := s.repo.GetByTokenHash("hash_abc")
	s.NoError(err)
	s.Equal(token.ID, found.ID)

	_, err = s.repo.GetByTokenHash("unknown_hash")
	s.Equal(ErrRefreshTokenNotFound, err)
}

func (s *RefreshTokenRepositorySuite) TestRefreshTokenRepository_Revoke() {
	token := s.createToken("hash_revoke", time.Now().Add(time.Hour))

	err := s.repo.Revoke(token.ID)
	s.NoError(err)

	found, err := s.repo.GetByTokenHash("hash_revoke")
	s.NoError(err)
	s.True(found.IsRevoked())

	// Already revoked
	err = s.repo.Revoke(token.ID)
	s.Equal(ErrRefreshTokenNotFound, err)
}

func (s *RefreshTokenRepositorySuite) TestRefreshTokenRepository_RevokeAllForUser() {
	s.createToken("hash_1", time.Now().Add(time.Hour))
	s.createToken("hash_2", time.Now().Add(time.Hour))

	err := s.repo.RevokeAllForUser(s.user.ID)
	s.NoError(err)

	tokens, err := s.repo.GetActiveByUserID(s.user.ID)
	s.NoError(err)
	s.Empty(tokens)
}

func (s *RefreshTokenRepositorySuite) TestRefreshTokenRepository_DeleteExpired() {
	s.createToken("hash_expired", time.Now().Add(-time.Hour))
	s.createToken("hash_valid", time.Now().Add(time.Hour))

	deleted, err := s.repo.DeleteExpired()
	s.NoError(err)
	s.Equal(int64(1), deleted)

	_, err = s.repo.GetByTokenHash("hash_expired")
	s.Equal(ErrRefreshTokenNotFound, err)

	_, err = s.repo.GetByTokenHash("hash_valid")
	s.NoError(err)
}

func (s *RefreshTokenRepositorySuite) TestRefreshTokenRepository_GetActiveByUserID() {
	s.createToken("hash_active", time.Now().Add(time.Hour))
	s.createToken("hash_expired", time.Now().Add(-time.Hour))

	tokens, err := s.repo.GetActiveByUserID(s.user.ID)
	s.NoError(err)
	s.Require().Len(tokens, 1)
	s.Equal("hash_active", tokens[0].TokenHash)

	tokens, err = s.repo.GetActiveByUserID(uuid.New())
	s.NoError(err)
	s.Empty(tokens)
}
