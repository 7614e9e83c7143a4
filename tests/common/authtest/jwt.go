//go:build unit || e2e

package authtest

import (
	"testing"

	"flashsale-scheduler/internal/pkg/config"
	"flashsale-scheduler/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userName string, marketplace bool) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Duration).GenerateToken(userName, marketplace)
	require.NoError(t, err)
	return token
}
