package profiles

import (
	"context"
	"stackwise-service/internal/app/models"
	"stackwise-service/internal/pkg/dto/requests"
)

type ProfileUsecase interface {
	UpdateProfile(ctx context.Context, identity *models.Identity, request *requests.UpdateIdentityProfile) (map[string]interface{}, error)
}
