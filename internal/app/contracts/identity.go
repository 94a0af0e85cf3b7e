package contracts

import (
	"context"
	"stackwise-service/internal/pkg/dto/responses"
)

// IdentityClient talks to the identity provider's management API. Every user
// mutation is a strict two-step protocol: token acquisition first, and only
// on success the authenticated PATCH.
type IdentityClient interface {
	AcquireManagementToken(ctx context.Context) (*responses.ManagementToken, error)
	UpdateUserRecord(ctx context.Context, userID string, patch map[string]interface{}) (map[string]interface{}, error)
}
