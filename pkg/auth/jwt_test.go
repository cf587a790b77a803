package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	SetSecret("test-secret")
	service := &JWTService{}

	token, err := service.GenerateJWT("5c2f0a3e-7f36-4f3a-9a34-20c1a49f2f10", "admin", time.Now().Add(15*time.Minute))
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "5c2f0a3e-7f36-4f3a-9a34-20c1a49f2f10", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "wagerhall", claims.Issuer)
}

func TestValidateToken_Invalid(t *testing.T) {
	SetSecret("test-secret")
	service := &JWTService{}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage token", "not.a.token"},
		{"empty token", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestValidateToken_Expired(t *testing.T) {
	SetSecret("test-secret")
	service := &JWTService{}

	token, err := service.GenerateJWT("5c2f0a3e-7f36-4f3a-9a34-20c1a49f2f10", "user", time.Now().Add(-time.Minute))
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	SetSecret("test-secret")
	service := &JWTService{}
	token, err := service.GenerateJWT("5c2f0a3e-7f36-4f3a-9a34-20c1a49f2f10", "user", time.Now().Add(time.Minute))
	assert.NoError(t, err)

	SetSecret("another-secret")
	claims, err := service.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)

	SetSecret("test-secret")
}
