package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royaltyguard/royalty-checker/internal/api/middleware"
	"github.com/royaltyguard/royalty-checker/internal/registry"
)

func generateKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pemKey := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return key, string(pemKey)
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	key, publicKey := generateKey(t)
	otherKey, _ := generateKey(t)

	cfg := middleware.AuthConfig{
		JWTPublicKey: publicKey,
		Credentials:  registry.NewCredentialRegistry([]string{"secret-key"}),
	}

	now := time.Now()
	validToken := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "partner-1",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	expiredToken := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "partner-1",
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	})
	foreignToken := signToken(t, otherKey, jwt.RegisteredClaims{Subject: "partner-1"})

	tests := []struct {
		name        string
		header      string
		cfg         middleware.AuthConfig
		wantSuccess bool
		wantType    string
		wantSubject string
		wantErr     string
	}{
		{
			name:        "valid JWT",
			header:      "Bearer " + validToken,
			cfg:         cfg,
			wantSuccess: true,
			wantType:    "jwt",
			wantSubject: "partner-1",
		},
		{
			name:    "expired JWT",
			header:  "Bearer " + expiredToken,
			cfg:     cfg,
			wantErr: "failed to parse token",
		},
		{
			name:    "JWT signed by another key",
			header:  "Bearer " + foreignToken,
			cfg:     cfg,
			wantErr: "failed to parse token",
		},
		{
			name:    "JWT without configured public key",
			header:  "Bearer " + validToken,
			cfg:     middleware.AuthConfig{Credentials: cfg.Credentials},
			wantErr: "JWT public key not configured",
		},
		{
			name:    "JWT with unparseable public key",
			header:  "Bearer " + validToken,
			cfg:     middleware.AuthConfig{JWTPublicKey: "not a pem"},
			wantErr: "failed to parse RSA public key",
		},
		{
			name:        "valid API key",
			header:      "ApiKey secret-key",
			cfg:         cfg,
			wantSuccess: true,
			wantType:    "apikey",
		},
		{
			name:    "invalid API key",
			header:  "ApiKey wrong-key",
			cfg:     cfg,
			wantErr: "invalid API key",
		},
		{
			name:    "no API keys configured",
			header:  "ApiKey secret-key",
			cfg:     middleware.AuthConfig{},
			wantErr: "no API keys configured",
		},
		{
			name:    "missing header",
			header:  "",
			cfg:     cfg,
			wantErr: "missing Authorization header",
		},
		{
			name:    "malformed header",
			header:  "secret-key",
			cfg:     cfg,
			wantErr: "invalid Authorization header format",
		},
		{
			name:    "unsupported scheme",
			header:  "Basic dXNlcjpwYXNz",
			cfg:     cfg,
			wantErr: "unsupported authorization type: basic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := middleware.Authenticate(tt.header, tt.cfg)

			assert.Equal(t, tt.wantSuccess, result.Success)
			if !tt.wantSuccess {
				require.Error(t, result.Error)
				assert.Contains(t, result.Error.Error(), tt.wantErr)
				return
			}
			require.NoError(t, result.Error)
			assert.Equal(t, tt.wantType, result.AuthType)
			assert.Equal(t, tt.wantSubject, result.AuthSubject)
		})
	}
}

func TestAuthenticate_PKCS1PublicKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pemKey := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PUBLIC KEY",
		Bytes: x509.MarshalPKCS1PublicKey(&key.PublicKey),
	})

	token := signToken(t, key, jwt.RegisteredClaims{Subject: "partner-2"})
	result := middleware.Authenticate("Bearer "+token, middleware.AuthConfig{JWTPublicKey: string(pemKey)})

	require.NoError(t, result.Error)
	assert.True(t, result.Success)
	assert.Equal(t, "partner-2", result.AuthSubject)
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := middleware.AuthConfig{
		Credentials: registry.NewCredentialRegistry([]string{"secret-key"}),
	}

	newRouter := func() *gin.Engine {
		router := gin.New()
		router.GET("/protected", middleware.Auth(cfg), func(c *gin.Context) {
			c.String(http.StatusOK, c.GetString(string(middleware.AUTH_TYPE_KEY)))
		})
		return router
	}

	t.Run("accepts valid API key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "ApiKey secret-key")
		w := httptest.NewRecorder()

		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "apikey", w.Body.String())
	})

	t.Run("rejects missing credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()

		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"unauthorized"`)
		assert.Contains(t, w.Body.String(), "missing Authorization header")
	})
}
