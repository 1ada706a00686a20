package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"doctorbot/pkg/jwt"
	"doctorbot/pkg/response"

	"github.com/redis/go-redis/v9"
)

type contextKey string

const (
	EditorIDKey    contextKey = "editor_id"
	EditorEmailKey contextKey = "editor_email"
	TokenIDKey     contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		tokenKey := fmt.Sprintf("access_token:%d:%s", claims.EditorID, claims.TokenID)
		exists, err := m.redisClient.Exists(r.Context(), tokenKey).Result()
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if exists == 0 {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), EditorIDKey, claims.EditorID)
		ctx = context.WithValue(ctx, EditorEmailKey, claims.Email)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetEditorIDFromContext(ctx context.Context) (uint, bool) {
	editorID, ok := ctx.Value(EditorIDKey).(uint)
	return editorID, ok
}

func GetEditorEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EditorEmailKey).(string)
	return email, ok
}

func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
