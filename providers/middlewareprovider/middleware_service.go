package middlewareprovider

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"inventaris/models"
	"inventaris/providers"
	"inventaris/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const (
	userContextKey contextKey = "user_key"
	roleContextKey contextKey = "role_key"

	accessTokenTTL = 12 * time.Hour
)

type DefaultAuthMiddleware struct {
	secret []byte
}

func NewAuthMiddlewareService(secret string) providers.AuthMiddlewareService {
	return &DefaultAuthMiddleware{
		secret: []byte(secret),
	}
}

type accessClaims struct {
	UserID int64  `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (a *DefaultAuthMiddleware) GenerateJWT(userID int64, role string) (string, error) {
	claims := accessClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

func (a *DefaultAuthMiddleware) parseJWT(tokenStr string) (int64, string, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", errors.New("invalid or expired token")
	}
	return claims.UserID, claims.Role, nil
}

func (a *DefaultAuthMiddleware) JWTAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessToken := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if accessToken == "" {
				utils.RespondError(w, http.StatusUnauthorized, errors.New("missing access token"), "missing access token")
				return
			}

			userID, role, err := a.parseJWT(accessToken)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, userID)
			ctx = context.WithValue(ctx, roleContextKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *DefaultAuthMiddleware) RequireRole(allowedRoles ...models.Role) func(http.Handler) http.Handler {
	allowed := make(map[models.Role]bool)
	for _, role := range allowedRoles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, role, err := a.GetUserAndRoleFromContext(r)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if allowed[models.Role(role)] {
				next.ServeHTTP(w, r)
				return
			}
			http.Error(w, "forbidden", http.StatusForbidden)
		})
	}
}

func (a *DefaultAuthMiddleware) GetUserAndRoleFromContext(r *http.Request) (int64, string, error) {
	userID, ok := r.Context().Value(userContextKey).(int64)
	if !ok {
		return 0, "", errors.New("user ID not found in context")
	}
	role, ok := r.Context().Value(roleContextKey).(string)
	if !ok {
		return 0, "", errors.New("role not found in context")
	}
	return userID, role, nil
}
