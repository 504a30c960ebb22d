package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"silwer/config"
	"silwer/internal/domain"
	"silwer/internal/repository"
	"silwer/pkg/auth"
)

var (
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	ErrInvalidToken       = errors.New("недействительный токен")
)

type tokenClaims struct {
	jwt.RegisteredClaims
	AdminID int64 `json:"admin_id"`
}

type AuthServiceImpl struct {
	repo      repository.AuthRepository
	jwtConfig config.JWTConfig
	logger    *zap.Logger
}

func NewAuthService(repo repository.AuthRepository, jwtConfig config.JWTConfig, logger *zap.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		repo:      repo,
		jwtConfig: jwtConfig,
		logger:    logger,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error) {
	admin, err := s.repo.GetAdminByEmail(ctx, dto.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := auth.VerifyPassword(dto.Password, admin.PasswordHash)
	if err != nil {
		s.logger.Error("ошибка проверки пароля", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, admin.ID, userAgent, ip)
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, adminID int64, userAgent, ip string) (*domain.Tokens, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtConfig.AccessTokenTTL)),
		},
		AdminID: adminID,
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtConfig.SigningKey))
	if err != nil {
		return nil, err
	}

	session := domain.Session{
		ID:           uuid.New().String(),
		AdminID:      adminID,
		RefreshToken: uuid.New().String(),
		UserAgent:    userAgent,
		IP:           ip,
		ExpiresAt:    now.Add(s.jwtConfig.RefreshTokenTTL),
		CreatedAt:    now,
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	return &domain.Tokens{
		AccessToken:  accessToken,
		RefreshToken: session.RefreshToken,
	}, nil
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error) {
	session, err := s.repo.GetSessionByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if err := s.repo.DeleteSession(ctx, session.ID); err != nil {
		s.logger.Warn("ошибка удаления сессии", zap.Error(err))
	}

	if time.Now().After(session.ExpiresAt) {
		return nil, ErrInvalidToken
	}

	return s.issueTokens(ctx, session.AdminID, userAgent, ip)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	session, err := s.repo.GetSessionByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}

	return s.repo.DeleteSession(ctx, session.ID)
}

func (s *AuthServiceImpl) ParseToken(token string) (int64, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtConfig.SigningKey), nil
	})
	if err != nil {
		return 0, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return 0, ErrInvalidToken
	}

	return claims.AdminID, nil
}

// EnsureDefaultAdmin создает администратора из переменных окружения при
// первом запуске. При наличии хотя бы одной учетной записи ничего не делает.
func (s *AuthServiceImpl) EnsureDefaultAdmin(ctx context.Context, email, password, name string) error {
	if email == "" || password == "" {
		return nil
	}

	count, err := s.repo.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = s.repo.CreateAdmin(ctx, domain.AdminUser{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return err
	}

	s.logger.Info("создан администратор по умолчанию", zap.String("email", email))

	return nil
}
