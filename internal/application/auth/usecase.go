package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MRMRMR033/pos-api/internal/application/dto"
	"github.com/MRMRMR033/pos-api/internal/domain"
	"github.com/MRMRMR033/pos-api/internal/domain/access"
	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/repository"
	"github.com/MRMRMR033/pos-api/pkg/jwt"
	"github.com/MRMRMR033/pos-api/pkg/logger"
	"github.com/MRMRMR033/pos-api/pkg/validation"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// errBadCredentials mismo mensaje para email inexistente y password incorrecto.
var errBadCredentials = &domain.Error{Kind: domain.ErrUnauthorized, Msg: "credenciales inválidas"}

// AuthUseCase casos de uso de autenticación: registro, login, logout y perfil.
type AuthUseCase struct {
	userRepo repository.UserRepository
	sessions SessionRecorder
	revoker  TokenRevoker
	hasher   access.Hasher
	validate *validation.Validator
	jwtCfg   JWTConfig
	log      *logger.Logger
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	sessions SessionRecorder,
	revoker TokenRevoker,
	hasher access.Hasher,
	v *validation.Validator,
	jwtCfg JWTConfig,
	log *logger.Logger,
) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		userRepo: userRepo,
		sessions: sessions,
		revoker:  revoker,
		hasher:   hasher,
		validate: v,
		jwtCfg:   jwtCfg,
		log:      log.Named("auth"),
		now:      time.Now,
	}
}

// RegisterUser crea un usuario con password hasheado. Rol por defecto: empleado.
// Email ya registrado devuelve ErrConflict.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, &domain.Error{Kind: domain.ErrInvalidInput, Msg: "datos inválidos: " + err.Error(), Cause: err}
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleEmpleado
	}
	now := uc.now()
	user := &entity.User{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        &email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		return nil, domain.Invalid("no se pudo registrar el usuario", err)
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y registra el evento LOGIN.
// Si el evento no se puede guardar el login igual procede.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, &domain.Error{Kind: domain.ErrInvalidInput, Msg: "datos inválidos: " + err.Error(), Cause: err}
	}
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil || !uc.hasher.Verify(in.Password, user.PasswordHash) {
		return nil, errBadCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	uc.recordSession(ctx, user.ID, entity.SessionLogin, now)
	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   now.Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
		Usuario:     *toUserResponse(user),
	}, nil
}

// Authenticate valida el token y que no haya sido revocado; devuelve la identidad de la petición.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (access.Identity, *jwt.Claims, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return access.Identity{}, nil, &domain.Error{Kind: domain.ErrUnauthorized, Msg: "token inválido o expirado", Cause: err}
	}
	if claims.ID != "" && uc.revoker != nil {
		revoked, err := uc.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			return access.Identity{}, nil, err
		}
		if revoked {
			return access.Identity{}, nil, &domain.Error{Kind: domain.ErrUnauthorized, Msg: "sesión cerrada"}
		}
	}
	return access.Identity{UserID: claims.UserID, Role: claims.Role}, claims, nil
}

// Logout revoca el token por el resto de su vida y registra el evento LOGOUT.
func (uc *AuthUseCase) Logout(ctx context.Context, claims *jwt.Claims) error {
	if claims == nil {
		return domain.ErrUnauthorized
	}
	now := uc.now()
	if uc.revoker != nil && claims.ID != "" {
		if ttl := claims.ExpiresIn(now); ttl > 0 {
			if err := uc.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
				return err
			}
		}
	}
	uc.recordSession(ctx, claims.UserID, entity.SessionLogout, now)
	return nil
}

// Profile devuelve el usuario autenticado (sin credenciales).
func (uc *AuthUseCase) Profile(ctx context.Context, id access.Identity) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFoundf("usuario %d no encontrado", id.UserID)
	}
	return toUserResponse(user), nil
}

func (uc *AuthUseCase) recordSession(ctx context.Context, userID int64, kind string, ts time.Time) {
	if uc.sessions == nil {
		return
	}
	if _, err := uc.sessions.Record(ctx, userID, kind, ts); err != nil {
		uc.log.Warn().Err(err).Int64("user_id", userID).Str("tipo", kind).Msg("no se pudo registrar el evento de sesión")
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
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
