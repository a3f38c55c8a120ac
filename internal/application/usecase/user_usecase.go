package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/MRMRMR033/pos-api/internal/application/dto"
	"github.com/MRMRMR033/pos-api/internal/domain"
	"github.com/MRMRMR033/pos-api/internal/domain/access"
	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/repository"
	"github.com/MRMRMR033/pos-api/pkg/validation"
)

// UserUseCase aplica reglas de negocio para usuarios. El hash de la contraseña nunca sale de aquí.
type UserUseCase struct {
	repo     repository.UserRepository
	hasher   access.Hasher
	validate *validation.Validator
	now      Clock
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, hasher access.Hasher, v *validation.Validator) *UserUseCase {
	return &UserUseCase{repo: repo, hasher: hasher, validate: v, now: time.Now}
}

// Create crea un usuario con la contraseña hasheada. Email duplicado devuelve ErrConflict.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := validate(uc.validate, in); err != nil {
		return nil, err
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		FullName:     normalizeText(in.FullName),
		Email:        normalizeEmail(in.Email),
		PasswordHash: hash,
		Role:         in.Rol,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, persistError("no se pudo crear el usuario", err)
	}
	return entityToUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// List lista los usuarios.
func (uc *UserUseCase) List(ctx context.Context) (dto.ListResponse[dto.UserResponse], error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return dto.ListResponse[dto.UserResponse]{}, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	return dto.NewList(items), nil
}

// Update aplica los campos presentes; una contraseña nueva se vuelve a hashear.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := validate(uc.validate, in); err != nil {
		return nil, err
	}
	user, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.FullName != nil {
		user.FullName = normalizeText(*in.FullName)
	}
	if in.Email != nil {
		user.Email = normalizeEmail(in.Email)
	}
	if in.Rol != nil {
		user.Role = *in.Rol
	}
	if in.Password != nil {
		hash, err := uc.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, persistError("no se pudo actualizar el usuario", err)
	}
	return entityToUserResponse(user), nil
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *UserUseCase) find(ctx context.Context, id int64) (*entity.User, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFoundf("usuario %d no encontrado", id)
	}
	return user, nil
}

// normalizeEmail recorta y pasa a minúsculas; vacío equivale a sin email.
func normalizeEmail(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(normalizeText(*s))
	if v == "" {
		return nil
	}
	return &v
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Rol:       u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
