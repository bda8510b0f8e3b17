package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/propfinder-backend/internal/domain/authz"
	"github.com/rafabene/propfinder-backend/internal/domain/entities"
	"github.com/rafabene/propfinder-backend/internal/domain/errors"
	"github.com/rafabene/propfinder-backend/internal/domain/repositories"
)

func basePropertyInput() CreatePropertyInput {
	return CreatePropertyInput{
		Title:     "Casa com vista para o mar",
		Location:  "Florianópolis, SC",
		Price:     "R$ 1.200.000",
		Area:      "240m²",
		Bedrooms:  4,
		Bathrooms: 3,
		Rating:    4.7,
		Amenities: []string{"Pool", "Garden"},
	}
}

func TestPropertyService_CreateProperty(t *testing.T) {
	t.Run("AGENT cria imóvel e vira o dono", func(t *testing.T) {
		env := newTestEnv(t)
		service := env.propertyService(t)
		agent := env.createUser(t, "agent@example.com", "Agent", entities.RoleAgent)

		property, err := service.CreateProperty(context.Background(), env.identityFor(agent), basePropertyInput())
		require.NoError(t, err)
		require.NotNil(t, property.UserID)
		assert.Equal(t, agent.ID, *property.UserID)
		assert.NotEmpty(t, property.ID)
	})

	t.Run("USER não cria imóvel", func(t *testing.T) {
		env := newTestEnv(t)
		service := env.propertyService(t)
		user := env.createUser(t, "user@example.com", "User", entities.RoleUser)

		_, err := service.CreateProperty(context.Background(), env.identityFor(user), basePropertyInput())
		assert.ErrorIs(t, err, errors.ErrForbidden)
	})

	t.Run("anônimo não cria imóvel", func(t *testing.T) {
		env := newTestEnv(t)
		service := env.propertyService(t)

		_, err := service.CreateProperty(context.Background(), authz.Anonymous(), basePropertyInput())
		assert.ErrorIs(t, err, errors.ErrUnauthenticated)
	})
}

func TestPropertyService_UpdateProperty(t *testing.T) {
	env := newTestEnv(t)
	service := env.propertyService(t)
	owner := env.createUser(t, "owner@example.com", "Owner", entities.RoleAgent)
	other := env.createUser(t, "other@example.com", "Other", entities.RoleAgent)
	admin := env.createUser(t, "admin@example.com", "Admin", entities.RoleAdmin)

	created, err := service.CreateProperty(context.Background(), env.identityFor(owner), basePropertyInput())
	require.NoError(t, err)

	t.Run("dono atualiza o próprio imóvel", func(t *testing.T) {
		title := "Casa reformada"
		updated, err := service.UpdateProperty(context.Background(), env.identityFor(owner), created.ID, UpdatePropertyInput{
			Title: &title,
		})
		require.NoError(t, err)
		assert.Equal(t, "Casa reformada", updated.Title)
	})

	t.Run("campos não informados permanecem inalterados", func(t *testing.T) {
		price := "R$ 1.100.000"
		updated, err := service.UpdateProperty(context.Background(), env.identityFor(owner), created.ID, UpdatePropertyInput{
			Price: &price,
		})
		require.NoError(t, err)
		assert.Equal(t, "R$ 1.100.000", updated.Price)
		assert.Equal(t, "Florianópolis, SC", updated.Location)
		assert.Equal(t, 4, updated.Bedrooms)
		assert.Equal(t, []string{"Pool", "Garden"}, updated.Amenities)
	})

	t.Run("AGENT não-dono recebe forbidden", func(t *testing.T) {
		title := "hijack"
		_, err := service.UpdateProperty(context.Background(), env.identityFor(other), created.ID, UpdatePropertyInput{
			Title: &title,
		})
		assert.ErrorIs(t, err, errors.ErrForbidden)
	})

	t.Run("ADMIN atualiza imóvel alheio", func(t *testing.T) {
		featured := true
		updated, err := service.UpdateProperty(context.Background(), env.identityFor(admin), created.ID, UpdatePropertyInput{
			Featured: &featured,
		})
		require.NoError(t, err)
		assert.True(t, updated.Featured)
	})

	t.Run("anônimo recebe unauthorized", func(t *testing.T) {
		title := "x"
		_, err := service.UpdateProperty(context.Background(), authz.Anonymous(), created.ID, UpdatePropertyInput{
			Title: &title,
		})
		assert.ErrorIs(t, err, errors.ErrUnauthenticated)
	})

	t.Run("imóvel inexistente retorna not found", func(t *testing.T) {
		title := "x"
		_, err := service.UpdateProperty(context.Background(), env.identityFor(owner), "missing", UpdatePropertyInput{
			Title: &title,
		})
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})
}

func TestPropertyService_DeleteProperty(t *testing.T) {
	env := newTestEnv(t)
	service := env.propertyService(t)
	owner := env.createUser(t, "owner@example.com", "Owner", entities.RoleAgent)
	other := env.createUser(t, "other@example.com", "Other", entities.RoleAgent)

	created, err := service.CreateProperty(context.Background(), env.identityFor(owner), basePropertyInput())
	require.NoError(t, err)

	t.Run("não-dono recebe forbidden", func(t *testing.T) {
		err := service.DeleteProperty(context.Background(), env.identityFor(other), created.ID)
		assert.ErrorIs(t, err, errors.ErrForbidden)
	})

	t.Run("dono remove o próprio imóvel", func(t *testing.T) {
		require.NoError(t, service.DeleteProperty(context.Background(), env.identityFor(owner), created.ID))

		_, err := service.GetProperty(context.Background(), created.ID)
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})
}

func TestPropertyService_ListProperties(t *testing.T) {
	env := newTestEnv(t)
	service := env.propertyService(t)
	agent := env.createUser(t, "agent@example.com", "Agent", entities.RoleAgent)

	beach := basePropertyInput()
	beach.Featured = true
	_, err := service.CreateProperty(context.Background(), env.identityFor(agent), beach)
	require.NoError(t, err)

	city := basePropertyInput()
	city.Title = "Apartamento no centro"
	city.Location = "São Paulo, SP"
	_, err = service.CreateProperty(context.Background(), env.identityFor(agent), city)
	require.NoError(t, err)

	t.Run("sem filtros lista tudo", func(t *testing.T) {
		properties, err := service.ListProperties(context.Background(), repositories.PropertyFilters{})
		require.NoError(t, err)
		assert.Len(t, properties, 2)
	})

	t.Run("filtro featured", func(t *testing.T) {
		featured := true
		properties, err := service.ListProperties(context.Background(), repositories.PropertyFilters{Featured: &featured})
		require.NoError(t, err)
		require.Len(t, properties, 1)
		assert.Equal(t, "Casa com vista para o mar", properties[0].Title)

		notFeatured := false
		properties, err = service.ListProperties(context.Background(), repositories.PropertyFilters{Featured: &notFeatured})
		require.NoError(t, err)
		require.Len(t, properties, 1)
		assert.Equal(t, "Apartamento no centro", properties[0].Title)
	})

	t.Run("filtro de location é substring case-insensitive", func(t *testing.T) {
		properties, err := service.ListProperties(context.Background(), repositories.PropertyFilters{Location: "são paulo"})
		require.NoError(t, err)
		require.Len(t, properties, 1)
		assert.Equal(t, "Apartamento no centro", properties[0].Title)
	})

	t.Run("filtros são conjuntivos", func(t *testing.T) {
		featured := true
		properties, err := service.ListProperties(context.Background(), repositories.PropertyFilters{
			Featured: &featured,
			Location: "São Paulo",
		})
		require.NoError(t, err)
		assert.Empty(t, properties)
	})
}
