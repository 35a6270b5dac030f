package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jmcastro/textil-api/internal/application/dto"
	"github.com/jmcastro/textil-api/internal/domain"
	"github.com/jmcastro/textil-api/internal/domain/entity"
	"github.com/jmcastro/textil-api/internal/domain/repository"
	"github.com/jmcastro/textil-api/pkg/jwt"
)

// UseCase registro y autenticación de usuarios.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtSecret   string
	jwtIssuer   string
	jwtExpMin   int
}

// NewUseCase construye el caso de uso.
func NewUseCase(usuarioRepo repository.UsuarioRepository, jwtSecret, jwtIssuer string, jwtExpMin int) *UseCase {
	return &UseCase{usuarioRepo: usuarioRepo, jwtSecret: jwtSecret, jwtIssuer: jwtIssuer, jwtExpMin: jwtExpMin}
}

func rolValido(rol string) bool {
	switch rol {
	case entity.RolAdmin, entity.RolAlmacenista, entity.RolCortador:
		return true
	}
	return false
}

// Register crea un usuario con contraseña bcrypt.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	if in.Nombre == "" || !rolValido(in.Rol) {
		return nil, domain.ErrInvalidInput
	}

	existente, err := uc.usuarioRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		Email:        email,
		Nombre:       in.Nombre,
		PasswordHash: string(hash),
		Rol:          in.Rol,
		Estado:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	resp := toUserResponse(usuario)
	return &resp, nil
}

// Login verifica credenciales y emite el token con el rol embebido.
// Credenciales malas y usuario inexistente responden igual.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	usuario, err := uc.usuarioRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if usuario == nil || usuario.Estado != "active" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtSecret, usuario.ID, usuario.Rol, uc.jwtIssuer, uc.jwtExpMin)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: toUserResponse(usuario)}, nil
}

// Me devuelve el perfil del usuario autenticado.
func (uc *UseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	usuario, err := uc.usuarioRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := toUserResponse(usuario)
	return &resp, nil
}

func toUserResponse(u *entity.Usuario) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Nombre:    u.Nombre,
		Rol:       u.Rol,
		Estado:    u.Estado,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
