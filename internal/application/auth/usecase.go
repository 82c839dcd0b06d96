package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/ArthurS357/capcom-suprimentos-api/internal/application/dto"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/repository"
	"github.com/ArthurS357/capcom-suprimentos-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens do painel admin.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login do back-office. Usuários são criados pelo seed; não há
// registro público.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Login verifica email/senha (bcrypt), gera o JWT e devolve token + usuário.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	// Email desconhecido e senha errada respondem com o mesmo erro, para
	// não permitir enumerar os emails cadastrados.
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
