package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/propfinder-backend/internal/domain/entities"
	"github.com/rafabene/propfinder-backend/internal/domain/errors"
)

func TestAuthService_Register(t *testing.T) {
	t.Run("cadastra usuário com role USER", func(t *testing.T) {
		env := newTestEnv(t)
		service := env.authService(t)

		user, err := service.Register(context.Background(), RegisterInput{
			Email:    "joao@example.com",
			Name:     "João Silva",
			Password: "senha-segura-123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, entities.RoleUser, user.Role)
		assert.NotEqual(t, "senha-segura-123", user.PasswordHash, "senha não pode ser persistida em claro")
	})

	t.Run("email duplicado é rejeitado", func(t *testing.T) {
		env := newTestEnv(t)
		service := env.authService(t)

		_, err := service.Register(context.Background(), RegisterInput{
			Email:    "joao@example.com",
			Name:     "João",
			Password: "senha-segura-123",
		})
		require.NoError(t, err)

		_, err = service.Register(context.Background(), RegisterInput{
			Email:    "joao@example.com",
			Name:     "Outro João",
			Password: "outra-senha-456",
		})
		assert.ErrorIs(t, err, errors.ErrEmailAlreadyExists)
	})

	t.Run("email inválido é rejeitado", func(t *testing.T) {
		env := newTestEnv(t)
		service := env.authService(t)

		_, err := service.Register(context.Background(), RegisterInput{
			Email:    "sem-arroba",
			Name:     "João",
			Password: "senha-segura-123",
		})
		assert.ErrorIs(t, err, errors.ErrInvalidEmail)
	})
}

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	service := env.authService(t)

	registered, err := service.Register(context.Background(), RegisterInput{
		Email:    "joao@example.com",
		Name:     "João Silva",
		Password: "senha-segura-123",
	})
	require.NoError(t, err)

	t.Run("credenciais corretas retornam token e usuário", func(t *testing.T) {
		token, user, err := service.Login(context.Background(), "joao@example.com", "senha-segura-123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("senha errada é rejeitada", func(t *testing.T) {
		_, _, err := service.Login(context.Background(), "joao@example.com", "senha-errada")
		assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
	})

	t.Run("email desconhecido é rejeitado", func(t *testing.T) {
		_, _, err := service.Login(context.Background(), "ninguem@example.com", "qualquer")
		assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
	})

	t.Run("conta sem senha não faz login por credencial", func(t *testing.T) {
		// Contas criadas pela promoção de agente não têm hash
		env.createUser(t, "agente@example.com", "Agente", entities.RoleAgent)

		_, _, err := service.Login(context.Background(), "agente@example.com", "")
		assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
	})
}

func TestAuthService_VerifyToken(t *testing.T) {
	env := newTestEnv(t)
	service := env.authService(t)

	user, err := service.Register(context.Background(), RegisterInput{
		Email:    "joao@example.com",
		Name:     "João Silva",
		Password: "senha-segura-123",
	})
	require.NoError(t, err)

	t.Run("token emitido resolve para a identidade do usuário", func(t *testing.T) {
		token, err := service.GenerateToken(user)
		require.NoError(t, err)

		identity, err := service.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, identity.UserID)
		assert.Equal(t, entities.RoleUser, identity.Role)
	})

	t.Run("token adulterado é rejeitado", func(t *testing.T) {
		token, err := service.GenerateToken(user)
		require.NoError(t, err)

		identity, err := service.VerifyToken(token + "x")
		assert.Error(t, err)
		assert.True(t, identity.IsAnonymous())
	})

	t.Run("token assinado com outro segredo é rejeitado", func(t *testing.T) {
		otherService := NewAuthService(env.userRepo, testLogger(), "other-secret", testTokenTTL)
		token, err := otherService.GenerateToken(user)
		require.NoError(t, err)

		identity, err := service.VerifyToken(token)
		assert.Error(t, err)
		assert.True(t, identity.IsAnonymous())
	})

	t.Run("token expirado é rejeitado", func(t *testing.T) {
		expiredService := NewAuthService(env.userRepo, testLogger(), "test-secret", -time.Hour)
		token, err := expiredService.GenerateToken(user)
		require.NoError(t, err)

		identity, err := service.VerifyToken(token)
		assert.Error(t, err)
		assert.True(t, identity.IsAnonymous())
	})

	t.Run("lixo não é token", func(t *testing.T) {
		identity, err := service.VerifyToken("not-a-jwt")
		assert.Error(t, err)
		assert.True(t, identity.IsAnonymous())
	})
}
