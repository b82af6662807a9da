package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/kbn_backend/internal/apperrors"
	"github.com/SscSPs/kbn_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload accepted by the API. Tokens are issued elsewhere;
// this service only validates them.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens and
// stores the resulting principal in the request context. An empty issuer disables
// the issuer check.
func AuthMiddleware(jwtSecret, issuer string) gin.HandlerFunc {
	parserOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"})}
	if issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(issuer))
	}

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			abortAuth(c, http.StatusUnauthorized, apperrors.ErrUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			abortAuth(c, http.StatusUnauthorized, apperrors.ErrUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		}, parserOpts...)

		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			abortAuth(c, http.StatusUnauthorized, apperrors.ErrUnauthorized, msg)
			return
		}

		if !token.Valid || claims.Subject == "" {
			logger.Warn("Invalid token claims or token is not valid")
			abortAuth(c, http.StatusUnauthorized, apperrors.ErrUnauthorized, "Invalid token claims")
			return
		}

		role, ok := domain.ParseRole(claims.Role)
		if !ok {
			logger.Warn("Token carries unknown role", slog.String("role", claims.Role))
			abortAuth(c, http.StatusUnauthorized, apperrors.ErrUnauthorized, "Invalid token claims")
			return
		}

		principal := domain.Principal{UserID: claims.Subject, Role: role}
		enrichedLogger := logger.With(
			slog.String("user_id", principal.UserID),
			slog.String("role", string(principal.Role)),
		)

		ctx := WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))
		c.Set(string(userIDKey), principal.UserID)

		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated principal holds one of roles.
// It must run after AuthMiddleware.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		principal, ok := GetPrincipalFromContext(c)
		if !ok {
			abortAuth(c, http.StatusUnauthorized, apperrors.ErrUnauthorized, "Unauthorized")
			return
		}
		if _, ok := allowed[principal.Role]; !ok {
			GetLoggerFromCtx(c.Request.Context()).Warn("Role not permitted for route",
				slog.String("role", string(principal.Role)),
				slog.String("path", c.FullPath()))
			abortAuth(c, http.StatusForbidden, apperrors.ErrForbidden, "Forbidden")
			return
		}
		c.Next()
	}
}

// abortAuth records cause on the Gin context for the request log and stops the chain with msg.
func abortAuth(c *gin.Context, status int, cause error, msg string) {
	_ = c.Error(fmt.Errorf("%w: %s", cause, msg))
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
