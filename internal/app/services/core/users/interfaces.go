package users

import (
	"context"
	"stackwise-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	ListUsers(ctx context.Context, email string) ([]responses.User, error)
}
