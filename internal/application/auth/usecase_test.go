package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidmr/almacen-api/internal/application/auth"
	"github.com/davidmr/almacen-api/internal/application/dto"
	"github.com/davidmr/almacen-api/internal/domain"
	"github.com/davidmr/almacen-api/internal/domain/entity"
	pkgjwt "github.com/davidmr/almacen-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

type fakeUserRepo struct {
	users map[string]*entity.User // por login
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.users[u.Login]; ok {
		return domain.ErrDuplicate
	}
	cp := *u
	r.users[u.Login] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByLogin(login string) (*entity.User, error) {
	u, ok := r.users[login]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newAuthUseCase() *auth.AuthUseCase {
	return auth.NewAuthUseCase(newFakeUserRepo(), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "almacen-api-test",
	})
}

func TestAuth_RegistroYLogin(t *testing.T) {
	uc := newAuthUseCase()

	user, err := uc.RegisterUser(dto.RegisterRequest{Login: "maria", Name: "María", Password: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, "maria", user.Login)

	out, err := uc.Login(dto.LoginRequest{Login: "maria", Password: "secreta"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "María", out.User.Name)

	// El token debe contener el usuario para el middleware
	userID, name, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "María", name)
}

func TestAuth_LoginDuplicado(t *testing.T) {
	uc := newAuthUseCase()
	_, err := uc.RegisterUser(dto.RegisterRequest{Login: "maria", Password: "a"})
	require.NoError(t, err)
	_, err = uc.RegisterUser(dto.RegisterRequest{Login: "maria", Password: "b"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAuth_UsuarioNoExiste(t *testing.T) {
	uc := newAuthUseCase()
	_, err := uc.Login(dto.LoginRequest{Login: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAuth_PasswordInvalida(t *testing.T) {
	uc := newAuthUseCase()
	_, err := uc.RegisterUser(dto.RegisterRequest{Login: "maria", Password: "correcta"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Login: "maria", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuth_CredencialesVacias(t *testing.T) {
	uc := newAuthUseCase()
	_, err := uc.Login(dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
