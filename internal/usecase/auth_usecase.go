package usecase

import (
	"context"
	"errors"
	"fmt"

	"doctorbot/internal/converter"
	"doctorbot/internal/delivery/dto"
	"doctorbot/internal/domain/repository"
	"doctorbot/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrEditorNotFound     = errors.New("editor not found")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, editorID uint, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentEditor(ctx context.Context, editorID uint) (*dto.EditorResponse, error)
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	editorRepo  repository.EditorRepository
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	editorRepo repository.EditorRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		editorRepo:  editorRepo,
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	editor, err := u.editorRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find editor by email: %+v", err)
		return nil, err
	}
	if editor == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(editor.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(editor.ID, editor.Email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(editor.ID, editor.Email)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := accessTokenKey(editor.ID, accessTokenID)
	refreshKey := refreshTokenKey(editor.ID, refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}
	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, editorID uint, accessTokenID, refreshTokenID string) error {
	// Claims carry the editor id, so the keys are built directly instead of
	// scanning the keyspace for the token ids.
	if err := u.redisClient.Del(ctx, logoutKeys(editorID, accessTokenID, refreshTokenID)...).Err(); err != nil {
		u.log.Warnf("Failed to delete tokens: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := refreshTokenKey(claims.EditorID, claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	// Rotate: the old refresh token is spent
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(claims.EditorID, claims.Email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}
	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(claims.EditorID, claims.Email)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := accessTokenKey(claims.EditorID, accessTokenID)
	newRefreshKey := refreshTokenKey(claims.EditorID, refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}
	if err := u.redisClient.Set(ctx, newRefreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) GetCurrentEditor(ctx context.Context, editorID uint) (*dto.EditorResponse, error) {
	editor, err := u.editorRepo.FindByID(u.db.WithContext(ctx), editorID)
	if err != nil {
		u.log.Warnf("Failed to find editor %d: %+v", editorID, err)
		return nil, err
	}
	if editor == nil {
		return nil, ErrEditorNotFound
	}
	return converter.EditorToResponse(editor), nil
}

// Token keys must match what the auth middleware checks on every request.

func accessTokenKey(editorID uint, tokenID string) string {
	return fmt.Sprintf("access_token:%d:%s", editorID, tokenID)
}

func refreshTokenKey(editorID uint, tokenID string) string {
	return fmt.Sprintf("refresh_token:%d:%s", editorID, tokenID)
}

func logoutKeys(editorID uint, accessTokenID, refreshTokenID string) []string {
	keys := []string{accessTokenKey(editorID, accessTokenID)}
	if refreshTokenID != "" {
		keys = append(keys, refreshTokenKey(editorID, refreshTokenID))
	}
	return keys
}
