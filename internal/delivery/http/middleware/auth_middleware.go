// Package middleware contains middlewares specific to the HTTP API server.
package middleware

import (
	"net/http"
	"strings"

	"empreende/config"
	"empreende/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards the admin dashboard routes with JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the bearer token issued by the admin login.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.cfg.Admin == nil || m.cfg.Admin.JWTSecret == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Admin authentication is not configured"})
		}

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.Admin.JWTSecret)
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Failed to parse token claims"})
		}

		subject, ok := claims["sub"].(string)
		if !ok || subject == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Subject missing from token"})
		}

		// Set admin identity on the context for handlers to use
		c.Set("adminUser", subject)

		return next(c)
	}
}
