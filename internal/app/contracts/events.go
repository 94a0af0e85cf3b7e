package contracts

import (
	"context"
	"stackwise-service/internal/app/models"
)

type EventPublisher interface {
	PublishStackEvent(ctx context.Context, event *models.StackEvent) error
}
