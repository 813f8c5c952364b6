package middleware

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/royaltyguard/royalty-checker/internal/api/shared/errors"
	"github.com/royaltyguard/royalty-checker/internal/logger"
	"github.com/royaltyguard/royalty-checker/internal/registry"
)

type contextKey string

const (
	AUTH_TYPE_KEY    contextKey = "auth_type"
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
	JWT_CLAIMS_KEY   contextKey = "jwt_claims"
)

const (
	AUTH_TYPE_JWT    = "jwt"
	AUTH_TYPE_APIKEY = "apikey"
)

var (
	errMissingHeader   = errors.New("missing Authorization header")
	errMalformedHeader = errors.New("invalid Authorization header format")
	errJWTDisabled     = errors.New("JWT public key not configured")
	errNoAPIKeys       = errors.New("no API keys configured")
	errInvalidAPIKey   = errors.New("invalid API key")
)

// AuthConfig holds the credentials accepted on the paginated endpoints
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format, empty disables bearer tokens
	Credentials  registry.CredentialRegistry
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success     bool
	AuthType    string
	Claims      *jwt.RegisteredClaims
	AuthSubject string
	Error       error
}

// Authenticator checks Authorization headers against a fixed AuthConfig
type Authenticator struct {
	publicKey   *rsa.PublicKey
	keyErr      error
	credentials registry.CredentialRegistry
	parser      *jwt.Parser
}

// NewAuthenticator parses the configured public key once. A key that fails to parse
// is reported on every bearer attempt rather than here.
func NewAuthenticator(cfg AuthConfig) *Authenticator {
	a := &Authenticator{
		credentials: cfg.Credentials,
		parser:      jwt.NewParser(jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"})),
	}
	if cfg.JWTPublicKey == "" {
		a.keyErr = errJWTDisabled
		return a
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.JWTPublicKey))
	if err != nil {
		a.keyErr = fmt.Errorf("failed to parse RSA public key: %w", err)
		return a
	}
	a.publicKey = key
	return a
}

// Authenticate accepts "Bearer <RS256 JWT>" and "ApiKey <key>"; the scheme is case-insensitive
func (a *Authenticator) Authenticate(authHeader string) AuthResult {
	if authHeader == "" {
		return AuthResult{Error: errMissingHeader}
	}

	scheme, credential, ok := strings.Cut(authHeader, " ")
	if !ok {
		return AuthResult{Error: errMalformedHeader}
	}

	switch strings.ToLower(scheme) {
	case "bearer":
		claims, err := a.verifyJWT(credential)
		if err != nil {
			return AuthResult{Error: err}
		}
		return AuthResult{Success: true, AuthType: AUTH_TYPE_JWT, Claims: claims, AuthSubject: claims.Subject}

	case "apikey":
		if err := a.verifyAPIKey(credential); err != nil {
			return AuthResult{Error: err}
		}
		return AuthResult{Success: true, AuthType: AUTH_TYPE_APIKEY}

	default:
		return AuthResult{Error: fmt.Errorf("unsupported authorization type: %s", strings.ToLower(scheme))}
	}
}

// Authenticate is a one-off check; middleware should reuse an Authenticator
func Authenticate(authHeader string, cfg AuthConfig) AuthResult {
	return NewAuthenticator(cfg).Authenticate(authHeader)
}

// Auth rejects requests without valid credentials with 401
func Auth(cfg AuthConfig) gin.HandlerFunc {
	authenticator := NewAuthenticator(cfg)
	if authenticator.keyErr != nil && !errors.Is(authenticator.keyErr, errJWTDisabled) {
		logger.Warn("Bearer authentication disabled", zap.Error(authenticator.keyErr))
	}

	return func(c *gin.Context) {
		result := authenticator.Authenticate(c.GetHeader("Authorization"))

		if !result.Success {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierrors.NewUnauthorizedError("Authentication failed", result.Error.Error()))
			return
		}

		c.Set(string(AUTH_TYPE_KEY), result.AuthType)
		if result.Claims != nil {
			c.Set(string(JWT_CLAIMS_KEY), result.Claims)
		}
		if result.AuthSubject != "" {
			c.Set(string(AUTH_SUBJECT_KEY), result.AuthSubject)
		}
		c.Next()
	}
}

// verifyJWT checks signature, exp and nbf
func (a *Authenticator) verifyJWT(token string) (*jwt.RegisteredClaims, error) {
	if a.publicKey == nil {
		return nil, a.keyErr
	}

	claims := &jwt.RegisteredClaims{}
	if _, err := a.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return a.publicKey, nil
	}); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return claims, nil
}

func (a *Authenticator) verifyAPIKey(key string) error {
	if a.credentials == nil || a.credentials.Len() == 0 {
		return errNoAPIKeys
	}
	if !a.credentials.IsValidAPIKey(key) {
		return errInvalidAPIKey
	}
	return nil
}
