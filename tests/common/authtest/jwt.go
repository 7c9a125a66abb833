//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"merchstore/internal/pkg/config"
	"merchstore/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID, brandID uuid.UUID, role string) string {
	t.Helper()
	verifier := jwt.NewVerifier(h.cfg.Secret)
	token, err := verifier.Sign(userID, brandID, role, 15*time.Minute)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID, brandID uuid.UUID, role string) string {
	t.Helper()
	verifier := jwt.NewVerifier(h.cfg.Secret)
	token, err := verifier.Sign(userID, brandID, role, -1*time.Minute)
	require.NoError(t, err)
	return token
}
