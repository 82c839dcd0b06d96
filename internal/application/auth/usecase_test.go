package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ArthurS357/capcom-suprimentos-api/internal/application/auth"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/application/dto"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"
	pkgjwt "github.com/ArthurS357/capcom-suprimentos-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake em memória do repositório de usuários
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testPassword = "senha-forte-123"
)

func novoAuthFixture(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	users := &fakeUserRepo{byEmail: map[string]*entity.User{
		"admin@capcom.com.br": {
			ID:           "u-1",
			Email:        "admin@capcom.com.br",
			PasswordHash: string(hash),
			Name:         "Administrador",
			Role:         entity.RoleAdmin,
			CreatedAt:    time.Now(),
		},
	}}
	return auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "capcom-suprimentos-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredenciaisValidas(t *testing.T) {
	uc := novoAuthFixture(t)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@capcom.com.br", Password: testPassword})
	require.NoError(t, err)

	assert.Equal(t, "admin@capcom.com.br", out.User.Email)
	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err, "o token emitido deve ser válido")
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_SenhaErrada(t *testing.T) {
	uc := novoAuthFixture(t)

	_, err := uc.Login(dto.LoginRequest{Email: "admin@capcom.com.br", Password: "senha-errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconhecidoRespondeIgualASenhaErrada(t *testing.T) {
	uc := novoAuthFixture(t)

	// Email inexistente e senha errada devolvem o mesmo erro; qualquer
	// diferença permitiria enumerar os emails cadastrados.
	_, errEmail := uc.Login(dto.LoginRequest{Email: "nao-existe@capcom.com.br", Password: testPassword})
	_, errSenha := uc.Login(dto.LoginRequest{Email: "admin@capcom.com.br", Password: "senha-errada"})

	assert.ErrorIs(t, errEmail, domain.ErrUnauthorized)
	assert.Equal(t, errSenha, errEmail, "os dois caminhos de falha devem ser indistinguíveis")
}
