package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/internal/domain/repository"
	"github.com/jhoicas/catalog-admin/pkg/logger"
)

const msgUsernameTaken = "ya existe un usuario con ese nombre"

// UserUseCase aplica reglas de negocio para el directorio de usuarios.
type UserUseCase struct {
	repo repository.UserRepository
	log  *logger.Logger
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, log *logger.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, log: log.Component("users")}
}

// List devuelve todos los usuarios en orden de directorio (activos primero).
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// GetByID obtiene un usuario por ID o ErrNotFound.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Create da de alta un usuario activo con la contraseña hasheada con bcrypt.
func (uc *UserUseCase) Create(ctx context.Context, in dto.UserForm) (*dto.UserResponse, error) {
	if err := in.Validate(true); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewValidationError("username", msgUsernameTaken)
	}
	hash, err := hashPassword(in.Password1)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Age:          in.ParsedAge(),
		PasswordHash: hash,
		IsStaff:      in.IsStaff,
		IsSuperuser:  in.IsSuperuser,
		IsActive:     true,
		DateJoined:   now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewValidationError("username", msgUsernameTaken)
		}
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("usuario creado")
	return toUserResponse(user), nil
}

// Update modifica un usuario existente. Una contraseña vacía conserva la actual.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UserForm) (*dto.UserResponse, error) {
	user, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(false); err != nil {
		return nil, err
	}
	if in.Username != user.Username {
		other, err := uc.repo.GetByUsername(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != user.ID {
			return nil, domain.NewValidationError("username", msgUsernameTaken)
		}
	}
	user.Username = in.Username
	user.Email = in.Email
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.Age = in.ParsedAge()
	user.IsStaff = in.IsStaff
	user.IsSuperuser = in.IsSuperuser
	if in.Password1 != "" {
		hash, err := hashPassword(in.Password1)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewValidationError("username", msgUsernameTaken)
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

// Deactivate baja lógica: IsActive = false. La fila se conserva.
// actorID es el usuario que ejecuta la acción; no puede desactivarse a sí mismo.
func (uc *UserUseCase) Deactivate(ctx context.Context, actorID, id string) (*dto.UserResponse, error) {
	user, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.ID == actorID {
		return nil, fmt.Errorf("no puede desactivar su propia cuenta: %w", domain.ErrConflict)
	}
	if user.IsActive {
		user.IsActive = false
		user.UpdatedAt = time.Now()
		if err := uc.repo.Update(ctx, user); err != nil {
			return nil, err
		}
		uc.log.Info().Str("user_id", user.ID).Str("actor_id", actorID).Msg("usuario desactivado")
	}
	return toUserResponse(user), nil
}

// EnsureSuperuser crea un superusuario o promueve y reactiva uno existente con ese username.
func (uc *UserUseCase) EnsureSuperuser(ctx context.Context, username, email, password string) (*dto.UserResponse, bool, error) {
	existing, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		out, err := uc.Create(ctx, dto.UserForm{
			Username: username, Email: email,
			Password1: password, Password2: password,
			IsStaff: true, IsSuperuser: true,
		})
		return out, true, err
	}
	if len(password) < 8 {
		return nil, false, domain.NewValidationError("password1", "mínimo 8 caracteres")
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, false, err
	}
	existing.PasswordHash = hash
	existing.IsStaff = true
	existing.IsSuperuser = true
	existing.IsActive = true
	if email != "" {
		existing.Email = email
	}
	existing.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, existing); err != nil {
		return nil, false, err
	}
	return toUserResponse(existing), false, nil
}

func (uc *UserUseCase) find(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
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
