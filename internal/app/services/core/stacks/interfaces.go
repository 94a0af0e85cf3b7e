package stacks

import (
	"context"
	"stackwise-service/internal/pkg/dto/requests"
	"stackwise-service/internal/pkg/dto/responses"
)

type StackUsecase interface {
	CreateStatement(ctx context.Context, request *requests.CreateStack) (*responses.CreatedStatement, error)
	PatchStatement(ctx context.Context, request *requests.UpdateStack) (*responses.CreatedStatement, error)
	ListStack(ctx context.Context) (*responses.Stack, error)
}
