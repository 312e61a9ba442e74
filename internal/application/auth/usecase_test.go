package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/crmventas/negociaciones-api/internal/application/dto"
	"github.com/crmventas/negociaciones-api/internal/domain"
	"github.com/crmventas/negociaciones-api/internal/domain/entity"
	pkgjwt "github.com/crmventas/negociaciones-api/pkg/jwt"
)

type fakeUserRepo struct {
	byCedula   map[string]*entity.User
	created    []*entity.User
	passwords  map[int64]string
	nextUserID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byCedula:   map[string]*entity.User{},
		passwords:  map[int64]string{},
		nextUserID: 1,
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = f.nextUserID
	f.nextUserID++
	f.byCedula[u.Cedula] = u
	f.created = append(f.created, u)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range f.byCedula {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByCedula(_ context.Context, cedula string) (*entity.User, error) {
	return f.byCedula[cedula], nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	f.passwords[id] = hash
	return nil
}

const testSecret = "secreto-de-prueba"

func buildAuthUseCase(users *fakeUserRepo) *AuthUseCase {
	return NewAuthUseCase(users, JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "negociaciones-api-test",
	})
}

func conUsuario(t *testing.T, users *fakeUserRepo, cedula, password string, role int) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		ID:           users.nextUserID,
		Name:         "Maria Lopez",
		Cedula:       cedula,
		PasswordHash: string(hash),
		Role:         role,
	}
	users.nextUserID++
	users.byCedula[cedula] = u
	return u
}

func TestRegister_CreaEjecutivoConHash(t *testing.T) {
	users := newFakeUserRepo()
	uc := buildAuthUseCase(users)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Pedro Gomez",
		Cedula:   "V-12345",
		Password: "clave-segura",
	})
	require.NoError(t, err)

	assert.Equal(t, "Pedro Gomez", out.Name)
	assert.Equal(t, entity.RoleEjecutivo, out.Role, "todo registro nace como ejecutivo")

	require.Len(t, users.created, 1)
	guardado := users.created[0]
	assert.NotEqual(t, "clave-segura", guardado.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.PasswordHash), []byte("clave-segura")))
}

func TestRegister_CedulaDuplicada(t *testing.T) {
	users := newFakeUserRepo()
	conUsuario(t, users, "V-12345", "x", entity.RoleEjecutivo)
	uc := buildAuthUseCase(users)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Otro",
		Cedula:   "V-12345",
		Password: "clave-segura",
	})

	assert.ErrorIs(t, err, domain.ErrCedulaAlreadyExists)
	assert.Empty(t, users.created)
}

func TestLogin_EmiteTokenConIdentidad(t *testing.T) {
	users := newFakeUserRepo()
	u := conUsuario(t, users, "V-12345", "clave-segura", entity.RoleAdmin)
	uc := buildAuthUseCase(users)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Cedula: "V-12345", Password: "clave-segura"})
	require.NoError(t, err)

	assert.Equal(t, u.ID, out.User.ID)
	assert.Equal(t, u.Cedula, out.User.Cedula)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, u.Name, claims.Name)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestLogin_CedulaInexistente(t *testing.T) {
	uc := buildAuthUseCase(newFakeUserRepo())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Cedula: "NOEXISTE", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	users := newFakeUserRepo()
	conUsuario(t, users, "V-12345", "clave-segura", entity.RoleEjecutivo)
	uc := buildAuthUseCase(users)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Cedula: "V-12345", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResetPassword_ActualizaHash(t *testing.T) {
	users := newFakeUserRepo()
	u := conUsuario(t, users, "V-12345", "vieja", entity.RoleEjecutivo)
	uc := buildAuthUseCase(users)

	err := uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Cedula:               "V-12345",
		Password:             "clave-nueva",
		PasswordConfirmation: "clave-nueva",
	})
	require.NoError(t, err)

	hash, ok := users.passwords[u.ID]
	require.True(t, ok, "la contraseña debe persistirse")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("clave-nueva")))
}

func TestResetPassword_CedulaInexistente(t *testing.T) {
	uc := buildAuthUseCase(newFakeUserRepo())

	err := uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Cedula:               "NOEXISTE",
		Password:             "clave-nueva",
		PasswordConfirmation: "clave-nueva",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
