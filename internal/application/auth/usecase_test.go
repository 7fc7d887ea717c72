package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/auth"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/pkg/jwt"
)

const (
	testSecret = "secreto-de-test-no-usar-en-produccion"
	testIssuer = "munifinanzas-test"
)

type usuarioRepoFake struct {
	usuarios map[string]*entity.Usuario // por email
}

func newUsuarioRepoFake() *usuarioRepoFake {
	return &usuarioRepoFake{usuarios: map[string]*entity.Usuario{}}
}

func (f *usuarioRepoFake) Create(u *entity.Usuario) error {
	if _, ok := f.usuarios[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	f.usuarios[u.Email] = u
	return nil
}

func (f *usuarioRepoFake) GetByID(id string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *usuarioRepoFake) GetByEmail(email string) (*entity.Usuario, error) {
	return f.usuarios[email], nil
}

func (f *usuarioRepoFake) Update(u *entity.Usuario) error {
	f.usuarios[u.Email] = u
	return nil
}

func (f *usuarioRepoFake) List() ([]*entity.Usuario, error) {
	out := make([]*entity.Usuario, 0, len(f.usuarios))
	for _, u := range f.usuarios {
		out = append(out, u)
	}
	return out, nil
}

func nuevoAuth() (*auth.AuthUseCase, *usuarioRepoFake) {
	repo := newUsuarioRepoFake()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
	return uc, repo
}

// Alta de cuenta y login: el password nunca se guarda en claro y el token
// emitido lleva userID y rol verificables.
func TestAuth_AltaYLogin(t *testing.T) {
	uc, repo := nuevoAuth()

	creado, err := uc.CrearUsuario(dto.CrearUsuarioRequest{
		Email:    "tesoreria@muni.gob.ar",
		Nombre:   "Tesorería",
		Password: "secreta123",
		Rol:      domain.RolStaffFinanzas,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, creado.ID)
	assert.NotEqual(t, "secreta123", repo.usuarios["tesoreria@muni.gob.ar"].PasswordHash,
		"el password debe guardarse hasheado")

	resp, err := uc.Login(dto.LoginRequest{Email: "tesoreria@muni.gob.ar", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, domain.RolStaffFinanzas, resp.Rol)

	userID, rol, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, creado.ID, userID)
	assert.Equal(t, domain.RolStaffFinanzas, rol)
}

func TestAuth_PasswordIncorrecto(t *testing.T) {
	uc, _ := nuevoAuth()
	_, err := uc.CrearUsuario(dto.CrearUsuarioRequest{
		Email:    "a@muni.gob.ar",
		Password: "correcta1",
		Rol:      domain.RolOperadorSocial,
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@muni.gob.ar", Password: "incorrecta"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuth_UsuarioInexistente(t *testing.T) {
	uc, _ := nuevoAuth()
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@muni.gob.ar", Password: "loquesea"})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAuth_CuentaInactivaNoEntra(t *testing.T) {
	uc, repo := nuevoAuth()
	_, err := uc.CrearUsuario(dto.CrearUsuarioRequest{
		Email:    "baja@muni.gob.ar",
		Password: "secreta123",
		Rol:      domain.RolConsultaPolitica,
	})
	require.NoError(t, err)
	repo.usuarios["baja@muni.gob.ar"].Activo = false

	_, err = uc.Login(dto.LoginRequest{Email: "baja@muni.gob.ar", Password: "secreta123"})
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAuth_EmailDuplicado(t *testing.T) {
	uc, _ := nuevoAuth()
	_, err := uc.CrearUsuario(dto.CrearUsuarioRequest{
		Email:    "dup@muni.gob.ar",
		Password: "secreta123",
		Rol:      domain.RolOperadorFinanzas,
	})
	require.NoError(t, err)

	_, err = uc.CrearUsuario(dto.CrearUsuarioRequest{
		Email:    "dup@muni.gob.ar",
		Password: "otra12345",
		Rol:      domain.RolOperadorFinanzas,
	})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}
