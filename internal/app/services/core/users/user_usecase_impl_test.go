package users

import (
	"context"
	"testing"

	"stackwise-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestListUsers(t *testing.T) {
	t.Run("Full listing maps repository models", func(t *testing.T) {
		repository := new(mockUserRepository)
		repository.On("FindAll", mock.Anything).Return([]models.User{
			{ID: "u-1", Email: "jordan@example.com", FhirPatientID: "p-1"},
			{ID: "u-2", Email: "alex@example.com"},
		}, nil)

		uc := NewUserUsecase(repository, zap.NewNop())
		users, err := uc.ListUsers(context.Background(), "")
		require.NoError(t, err)

		require.Len(t, users, 2)
		assert.Equal(t, "jordan@example.com", users[0].Email)
		assert.Equal(t, "p-1", users[0].FhirPatientID)
	})

	t.Run("Email filter returns at most one user", func(t *testing.T) {
		repository := new(mockUserRepository)
		repository.On("FindByEmail", mock.Anything, "jordan@example.com").Return(&models.User{
			ID:    "u-1",
			Email: "jordan@example.com",
		}, nil)

		uc := NewUserUsecase(repository, zap.NewNop())
		users, err := uc.ListUsers(context.Background(), "jordan@example.com")
		require.NoError(t, err)

		require.Len(t, users, 1)
		assert.Equal(t, "u-1", users[0].ID)
		repository.AssertNotCalled(t, "FindAll", mock.Anything)
	})

	t.Run("Unknown email yields an empty list", func(t *testing.T) {
		repository := new(mockUserRepository)
		repository.On("FindByEmail", mock.Anything, "missing@example.com").Return(nil, nil)

		uc := NewUserUsecase(repository, zap.NewNop())
		users, err := uc.ListUsers(context.Background(), "missing@example.com")
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}
