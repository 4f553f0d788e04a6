package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models/dto"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/auth"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/logger"
)

// Context keys set for authenticated requests
const (
	ContextAdminID  = "adminID"
	ContextUsername = "username"
	ContextClaims   = "claims"
)

// Policy says what a route requires from the Authorization header
type Policy int

const (
	// PolicyPublic ignores the Authorization header
	PolicyPublic Policy = iota
	// PolicyOptional reads a valid token when present and ignores anything else
	PolicyOptional
	// PolicyAdmin rejects the request without a valid token
	PolicyAdmin
)

func (p Policy) String() string {
	switch p {
	case PolicyPublic:
		return "public"
	case PolicyOptional:
		return "optional"
	case PolicyAdmin:
		return "admin"
	}
	return "unknown"
}

// AuthMiddleware is the single authorization gate of the API
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// Enforce applies one policy to every request of a route
func (m *AuthMiddleware) Enforce(policy Policy) gin.HandlerFunc {
	return m.EnforceFunc(func(*gin.Context) Policy { return policy })
}

// EnforceFunc picks the policy per request
func (m *AuthMiddleware) EnforceFunc(choose func(*gin.Context) Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		policy := choose(c)
		if policy == PolicyPublic {
			c.Next()
			return
		}

		tokenString, ok := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			if policy == PolicyAdmin {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Access token required"})
				return
			}
			c.Next()
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if policy == PolicyAdmin {
				logger.Debug().Err(err).Str("path", c.FullPath()).Msg("Rejected token")
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid or expired token"})
				return
			}
			c.Next()
			return
		}

		c.Set(ContextAdminID, claims.ID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// ClaimsFrom returns the verified claims of the request, if any
func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// IsAuthenticated reports whether a valid token was presented
func IsAuthenticated(c *gin.Context) bool {
	_, ok := ClaimsFrom(c)
	return ok
}

// AdminIDFrom returns the authenticated admin id, or nil
func AdminIDFrom(c *gin.Context) *int64 {
	claims, ok := ClaimsFrom(c)
	if !ok {
		return nil
	}
	id := claims.ID
	return &id
}

// RequireClaims returns the claims or writes a 401
func RequireClaims(c *gin.Context) (*auth.Claims, bool) {
	claims, ok := ClaimsFrom(c)
	if !ok {
		HandleAPIError(c, apperrors.ErrUnauthorized)
		return nil, false
	}
	return claims, true
}
