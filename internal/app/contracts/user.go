package contracts

import (
	"context"
	"stackwise-service/internal/app/models"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
