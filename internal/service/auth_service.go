package service

import (
	"context"
	"errors"
	"time"

	"essen/internal/config"
	"essen/internal/domain"
	"essen/internal/dto"
	"essen/internal/model"
	"essen/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService verifies credentials, issues tokens and manages admin-panel
// users.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	ObtenerUsuario(ctx context.Context, id uint) (*dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, id uint, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	EliminarUsuario(ctx context.Context, id uint, actor string) error
	CrecimientoUsuarios(ctx context.Context) ([]dto.CrecimientoUsuarios, error)
}

type authService struct {
	usuarios repository.UsuarioRepository
	roles    repository.RolRepository
	cfg      *config.Config
}

func NewAuthService(usuarios repository.UsuarioRepository, roles repository.RolRepository, cfg *config.Config) AuthService {
	return &authService{usuarios: usuarios, roles: roles, cfg: cfg}
}

func mapUsuario(u model.Usuario) dto.UsuarioResponse {
	resp := dto.UsuarioResponse{
		ID:                u.ID,
		NombreUsuario:     u.NombreUsuario,
		Email:             u.Email,
		FechaCreacion:     u.FechaCreacion,
		FechaModificacion: u.FechaModificacion,
	}
	if u.Rol != nil {
		resp.Rol = &dto.RolRef{ID: u.Rol.ID, Nombre: u.Rol.Nombre}
	}
	return resp
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	// Identical message whether the user is missing or the password is wrong:
	// the response must not reveal which usernames exist.
	user, err := s.usuarios.ObtenerPorNombreUsuario(ctx, req.NombreUsuario)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NoAutorizado("Credenciales inválidas")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.NoAutorizado("Credenciales inválidas")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.LoginUser{
			ID:            user.ID,
			NombreUsuario: user.NombreUsuario,
			Rol:           user.RolID,
		},
	}, nil
}

func (s *authService) generateToken(user *model.Usuario) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":        user.ID,
		"nombre_usuario": user.NombreUsuario,
		"rol":            user.RolID,
		"exp":            now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":            now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// resolverRol validates rol_id against existing roles; nil falls back to the
// default user role.
func (s *authService) resolverRol(ctx context.Context, rolID *uint) (uint, error) {
	if rolID == nil {
		return model.RolUsuario, nil
	}
	if _, err := s.roles.ObtenerPorID(ctx, *rolID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ReferenciaInvalida("El rol especificado no existe")
		}
		return 0, err
	}
	return *rolID, nil
}

func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if _, err := s.usuarios.ObtenerPorNombreUsuario(ctx, req.NombreUsuario); err == nil {
		return nil, domain.Conflicto("Ya existe un usuario con ese nombre de usuario")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.usuarios.ObtenerPorEmail(ctx, req.Email); err == nil {
		return nil, domain.Conflicto("Ya existe un usuario con ese email")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rolID, err := s.resolverRol(ctx, req.RolID)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	user := &model.Usuario{
		NombreUsuario: req.NombreUsuario,
		Email:         req.Email,
		PasswordHash:  string(hash),
		RolID:         rolID,
	}
	if err := s.usuarios.Crear(ctx, user); err != nil {
		return nil, err
	}

	// Re-read so the response carries the resolved role.
	creado, err := s.usuarios.ObtenerPorID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	resp := mapUsuario(*creado)
	return &resp, nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.usuarios.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, mapUsuario(u))
	}
	return resp, nil
}

func (s *authService) ObtenerUsuario(ctx context.Context, id uint) (*dto.UsuarioResponse, error) {
	user, err := s.usuarios.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NoEncontrado("Usuario no encontrado")
		}
		return nil, err
	}
	resp := mapUsuario(*user)
	return &resp, nil
}

func (s *authService) ActualizarUsuario(ctx context.Context, id uint, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user, err := s.usuarios.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NoEncontrado("Usuario no encontrado")
		}
		return nil, err
	}

	if req.NombreUsuario != user.NombreUsuario {
		if existente, err := s.usuarios.ObtenerPorNombreUsuario(ctx, req.NombreUsuario); err == nil && existente.ID != id {
			return nil, domain.Conflicto("Ya existe un usuario con ese nombre de usuario")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	if req.Email != user.Email {
		if existente, err := s.usuarios.ObtenerPorEmail(ctx, req.Email); err == nil && existente.ID != id {
			return nil, domain.Conflicto("Ya existe un usuario con ese email")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if req.RolID != nil {
		rolID, err := s.resolverRol(ctx, req.RolID)
		if err != nil {
			return nil, err
		}
		user.RolID = rolID
	}

	user.NombreUsuario = req.NombreUsuario
	user.Email = req.Email
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.usuarios.Actualizar(ctx, user); err != nil {
		return nil, err
	}

	actualizado, err := s.usuarios.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapUsuario(*actualizado)
	return &resp, nil
}

func (s *authService) EliminarUsuario(ctx context.Context, id uint, actor string) error {
	return s.usuarios.EliminarLogico(ctx, id, actor)
}

func (s *authService) CrecimientoUsuarios(ctx context.Context) ([]dto.CrecimientoUsuarios, error) {
	fechas, err := s.usuarios.FechasCreacionDesde(ctx, inicioVentanaCrecimiento())
	if err != nil {
		return nil, err
	}
	conteos := contarPorMes(fechas)
	resp := make([]dto.CrecimientoUsuarios, 0, len(conteos))
	for _, c := range conteos {
		resp = append(resp, dto.CrecimientoUsuarios{Mes: c.mes, Usuarios: c.cantidad})
	}
	return resp, nil
}
