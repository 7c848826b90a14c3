package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/academico-api/internal/application/dto"
	"github.com/jhoicas/academico-api/internal/domain"
	"github.com/jhoicas/academico-api/internal/domain/entity"
	"github.com/jhoicas/academico-api/internal/domain/repository"
	"github.com/jhoicas/academico-api/pkg/jwt"
)

// JWTConfig configuración para emitir tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registro e inicio de sesión.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Signup crea un usuario: hashea el password con bcrypt y persiste.
// Username y email deben ser únicos; el rol por defecto es explorador.
func (uc *AuthUseCase) Signup(in dto.SignupRequest) (*dto.SignupResponse, error) {
	if existente, _ := uc.usuarioRepo.GetByUsername(in.Username); existente != nil {
		return nil, domain.ErrUsernameTaken
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if existente, _ := uc.usuarioRepo.GetByEmail(email); existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	rol := in.Rol
	if rol == "" {
		rol = entity.RolExplorador
	}
	if !entity.RolValido(rol) {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.Usuario{
		ID:           uuid.New().String(),
		Fullname:     strings.TrimSpace(in.Fullname),
		Email:        email,
		Username:     strings.TrimSpace(in.Username),
		PasswordHash: string(hash),
		Rol:          rol,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.usuarioRepo.Create(u); err != nil {
		return nil, err
	}
	return &dto.SignupResponse{ID: u.ID, Username: u.Username, Rol: u.Rol}, nil
}

// Signin verifica username/password y emite el token de sesión firmado con
// {user_id, rol, nombre} y expiración absoluta.
func (uc *AuthUseCase) Signin(in dto.SigninRequest) (*dto.SigninResponse, error) {
	u, err := uc.usuarioRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	nombre := u.Fullname
	if nombre == "" {
		nombre = u.Username
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Rol, nombre, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SigninResponse{
		Token: token,
		Usuario: dto.UsuarioResponse{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			Nombre:   nombre,
			Rol:      u.Rol,
		},
	}, nil
}
