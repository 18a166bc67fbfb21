package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/consigna-api/internal/application/auth"
	"github.com/jhoicas/consigna-api/internal/application/dto"
	"github.com/jhoicas/consigna-api/internal/domain"
	"github.com/jhoicas/consigna-api/internal/domain/entity"
	"github.com/jhoicas/consigna-api/internal/infrastructure/memstore"
	pkgjwt "github.com/jhoicas/consigna-api/pkg/jwt"
)

const testPassword = "s3creta!"

// newAuthUC arma el caso de uso sobre el store en memoria con un usuario
// master activo ya sembrado.
func newAuthUC(t *testing.T) (*auth.AuthUseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	require.NoError(t, err)

	store.SeedUser(&entity.User{
		ID:           "user-1",
		Login:        "dona.mara",
		Name:         "Mara Figueiredo",
		PasswordHash: string(hash),
		Role:         entity.RoleMaster,
		Active:       true,
		CreatedAt:    time.Now(),
	})
	store.SeedUser(&entity.User{
		ID:           "user-2",
		Login:        "ex.operador",
		Name:         "Cuenta dada de baja",
		PasswordHash: string(hash),
		Role:         entity.RoleOperador,
		Active:       false,
		CreatedAt:    time.Now(),
	})

	cfg := auth.JWTConfig{Secret: "secret-de-test", ExpMinutes: 30, Issuer: "consigna-api-test"}
	return auth.NewAuthUseCase(store.Users(), store.ActionLogs(), cfg), store
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso(t *testing.T) {
	uc, store := newAuthUC(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Login: "dona.mara", Password: testPassword})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.Token, "debe emitir un token")
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, "dona.mara", resp.User.Login)
	assert.Equal(t, entity.RoleMaster, resp.User.Role)

	// El token debe ser verificable con el mismo secret y llevar los claims.
	userID, role, err := pkgjwt.Parse("secret-de-test", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, entity.RoleMaster, role)

	// El login queda registrado en el log de acciones.
	logs := store.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, entity.ActionLogin, logs[0].Kind)
	assert.Equal(t, "user-1", logs[0].ActorID)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, store := newAuthUC(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Login: "dona.mara", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, resp)
	assert.Empty(t, store.Logs(), "un intento fallido no registra LOGIN")
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, _ := newAuthUC(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Login: "ex.operador", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, resp)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthUC(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Login: "nadie", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, resp)
}

func TestLogin_CamposVacios(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Login: "", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Login: "dona.mara", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
