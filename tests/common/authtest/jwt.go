//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"loyalty-engine/internal/domain/user"
	"loyalty-engine/internal/pkg/config"
	"loyalty-engine/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, actor user.Actor) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(actor.ID, actor.Email, actor.Role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, actor user.Actor) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(actor.ID, actor.Email, actor.Role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

// CreateForeignToken signs with a different secret.
func (h *JWTHelper) CreateForeignToken(t *testing.T, actor user.Actor) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret+"-other", time.Hour)
	token, err := service.GenerateToken(actor.ID, actor.Email, actor.Role)
	require.NoError(t, err)
	return token
}
