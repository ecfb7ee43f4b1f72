package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/sistem-barang/internal/application/dto"
	"github.com/tu-usuario/sistem-barang/internal/domain"
	"github.com/tu-usuario/sistem-barang/internal/domain/entity"
	"github.com/tu-usuario/sistem-barang/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo usuarios en memoria con unicidad de username.
type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return domain.ErrDuplicateUsername
		}
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error) {
	return f.users, nil
}

var testJWT = JWTConfig{Secret: "secret-de-prueba", ExpMinutes: 60, Issuer: "sistem-barang"}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	repo.users = append(repo.users, &entity.User{
		ID:           "u-" + username,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	})
}

func TestLoginSuccess(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(t, repo, "admin", "admin123", entity.RoleAdmin)
	uc := NewUseCase(repo, testJWT)

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "Login successful", out.Message)
	assert.Equal(t, "admin", out.User.Username)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	// El token transporta el principal completo
	p, err := token.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-admin", p.UserID)
	assert.Equal(t, "admin", p.Username)
	assert.Equal(t, entity.RoleAdmin, p.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(t, repo, "admin", "admin123", entity.RoleAdmin)
	uc := NewUseCase(repo, testJWT)

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	uc := NewUseCase(&fakeUserRepo{}, testJWT)

	// Mismo error que password incorrecto: no se distingue el caso
	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginEmptyFields(t *testing.T) {
	uc := NewUseCase(&fakeUserRepo{}, testJWT)

	_, err := uc.Login(dto.LoginRequest{Username: "", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewUseCase(repo, testJWT)

	out, err := uc.CreateUser(dto.CreateUserRequest{Username: "operador1", Password: "clave123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOperator, out.Role, "rol por defecto")

	require.Len(t, repo.users, 1)
	stored := repo.users[0]
	assert.NotEqual(t, "clave123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave123")))
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewUseCase(repo, testJWT)

	_, err := uc.CreateUser(dto.CreateUserRequest{Username: "operador1", Password: "a"})
	require.NoError(t, err)

	_, err = uc.CreateUser(dto.CreateUserRequest{Username: "operador1", Password: "b"})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestCreateUserValidation(t *testing.T) {
	uc := NewUseCase(&fakeUserRepo{}, testJWT)

	_, err := uc.CreateUser(dto.CreateUserRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateUser(dto.CreateUserRequest{Username: "x", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListUsersOmitsHashes(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(t, repo, "admin", "admin123", entity.RoleAdmin)
	seedUser(t, repo, "operador1", "clave", entity.RoleOperator)
	uc := NewUseCase(repo, testJWT)

	out, err := uc.ListUsers()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "admin", out[0].Username)
	assert.Equal(t, "operador1", out[1].Username)
}
