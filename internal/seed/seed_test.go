package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/repositories/mocks"
	appServices "github.com/rushiiaher/CivilPath-sub000/internal/app/services"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/auth"
)

func newServices(password string) (*appServices.Services, *repositories.Repositories) {
	repos := mocks.NewRepositories()
	svcs := appServices.NewServices(repos, appServices.Options{
		JWTService: auth.NewJWTService(auth.JWTConfig{SecretKey: "secret"}),
		Admin:      appServices.AdminCredentials{Username: "admin", Password: password},
		Logger:     zerolog.Nop(),
	})
	return svcs, repos
}

func TestCreateDefaultDataIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svcs, repos := newServices("admin123")

	require.NoError(t, CreateDefaultData(ctx, svcs, zerolog.Nop()))
	require.NoError(t, CreateDefaultData(ctx, svcs, zerolog.Nop()))

	types, err := repos.ResourceTypeRepository.List(ctx)
	require.NoError(t, err)
	assert.Len(t, types, len(repositories.DefaultResourceTypes))

	admin, err := repos.AdminRepository.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(admin.PasswordHash, "admin123"))
}

func TestCreateDefaultDataWithoutAdminPassword(t *testing.T) {
	ctx := context.Background()
	svcs, repos := newServices("")

	require.NoError(t, CreateDefaultData(ctx, svcs, zerolog.Nop()))

	_, err := repos.AdminRepository.GetByUsername(ctx, "admin")
	assert.Error(t, err)
}
