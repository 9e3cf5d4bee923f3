package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/internal/domain/repository"
	"github.com/jhoicas/catalog-admin/pkg/jwt"
	"github.com/jhoicas/catalog-admin/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// SessionRevoker lista de tokens revocados (logout). Puede ser nil: sin revocación del lado servidor.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthUseCase casos de uso de sesión del back-office: login y logout.
type AuthUseCase struct {
	userRepo repository.UserRepository
	revoker  SessionRevoker
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, revoker SessionRevoker, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, revoker: revoker, jwtCfg: jwtCfg, log: log.Component("auth")}
}

// Login verifica username/password y emite el token de sesión.
// Solo cuentas activas con is_staff o is_superuser pueden entrar.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginForm) (*dto.Session, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.CanAccessAdmin() {
		uc.log.Warn().Str("user_id", user.ID).Msg("login rechazado: cuenta sin acceso al back-office")
		return nil, domain.ErrForbidden
	}
	token, claims, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, jwt.Identity{
		UserID:      user.ID,
		Username:    user.Username,
		IsStaff:     user.IsStaff,
		IsSuperuser: user.IsSuperuser,
	})
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	uc.log.Info().Str("user_id", user.ID).Msg("sesión iniciada")
	return &dto.Session{
		Token:     token,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      *toUserResponse(user),
	}, nil
}

// Logout revoca el token hasta su expiración (si hay revocador configurado).
func (uc *AuthUseCase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if uc.revoker == nil || tokenID == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := uc.revoker.Revoke(ctx, tokenID, ttl); err != nil {
		return fmt.Errorf("revocar sesión: %w", err)
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		FullName:    u.FullName(),
		Age:         u.Age,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		IsActive:    u.IsActive,
		DateJoined:  u.DateJoined,
		UpdatedAt:   u.UpdatedAt,
	}
}
