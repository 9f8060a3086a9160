package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-referral/internal/api/shared/errors"
	"github.com/feral-file/ff-referral/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_TYPE_KEY    contextKey = "auth_type"
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
	JWT_CLAIMS_KEY   contextKey = "jwt_claims"
)

const (
	AuthTypeJWT    = "jwt"
	AuthTypeAPIKey = "apikey"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	JWTIssuer    string // Expected issuer, not checked when empty
	APIKeys      []string
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success     bool
	AuthType    string
	Claims      *jwt.RegisteredClaims
	AuthSubject string
	Error       error
}

// Authenticate validates the Authorization header and returns the authentication result.
// "Bearer <jwt>" authenticates a user, "ApiKey <key>" authenticates a trusted service.
func Authenticate(authHeader string, cfg AuthConfig) AuthResult {
	result := AuthResult{}

	if authHeader == "" {
		result.Error = errors.New("missing Authorization header")
		return result
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
		result.Error = errors.New("invalid Authorization header format")
		return result
	}

	credentials := strings.TrimSpace(parts[1])
	switch strings.ToLower(parts[0]) {
	case "bearer":
		claims, err := validateJWT(credentials, cfg)
		if err != nil {
			result.Error = err
			return result
		}
		result.Success = true
		result.AuthType = AuthTypeJWT
		result.Claims = claims
		result.AuthSubject = claims.Subject

	case "apikey":
		if err := validateAPIKey(credentials, cfg.APIKeys); err != nil {
			result.Error = err
			return result
		}
		result.Success = true
		result.AuthType = AuthTypeAPIKey

	default:
		result.Error = fmt.Errorf("unsupported authorization type: %s", parts[0])
	}

	return result
}

// JWTAuth only admits users with a valid token; the token subject is the acting user id
func JWTAuth(cfg AuthConfig) gin.HandlerFunc {
	return auth(cfg, AuthTypeJWT)
}

// APIKeyAuth only admits trusted services
func APIKeyAuth(cfg AuthConfig) gin.HandlerFunc {
	return auth(cfg, AuthTypeAPIKey)
}

func auth(cfg AuthConfig, authType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := Authenticate(c.GetHeader("Authorization"), cfg)
		if result.Success && result.AuthType != authType {
			result.Success = false
			result.Error = fmt.Errorf("%s authentication required", authType)
		}

		if !result.Success {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.NewUnauthorizedError("Authentication failed", result.Error.Error())
			c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
			return
		}

		c.Set(string(AUTH_TYPE_KEY), result.AuthType)
		if result.Claims != nil {
			c.Set(string(JWT_CLAIMS_KEY), result.Claims)
		}
		if result.AuthSubject != "" {
			c.Set(string(AUTH_SUBJECT_KEY), result.AuthSubject)
		}

		logger.DebugCtx(c.Request.Context(), "Authentication successful",
			zap.String("auth_type", result.AuthType),
			zap.String("subject", result.AuthSubject),
			zap.String("path", c.Request.URL.Path),
		)

		c.Next()
	}
}

// AuthSubject returns the authenticated user id, empty for service callers
func AuthSubject(c *gin.Context) string {
	return c.GetString(string(AUTH_SUBJECT_KEY))
}

// validateJWT validates an RS256/384/512 token and returns its claims
func validateJWT(tokenString string, cfg AuthConfig) (*jwt.RegisteredClaims, error) {
	if cfg.JWTPublicKey == "" {
		return nil, errors.New("JWT public key not configured")
	}

	publicKey, err := parseRSAPublicKey(cfg.JWTPublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}),
	}
	if cfg.JWTIssuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.JWTIssuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return publicKey, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key in PKIX or PKCS1 PEM form
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}

func validateAPIKey(apiKey string, validKeys []string) error {
	configured := false
	for _, key := range validKeys {
		if key == "" {
			continue
		}
		configured = true
		if key == apiKey {
			return nil
		}
	}

	if !configured {
		return errors.New("no API keys configured")
	}
	return errors.New("invalid API key")
}
