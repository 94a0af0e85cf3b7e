package profiles

import (
	"context"

	"stackwise-service/internal/app/contracts"
	"stackwise-service/internal/app/models"
	"stackwise-service/internal/pkg/constvars"
	"stackwise-service/internal/pkg/dto/requests"
	"stackwise-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type profileUsecase struct {
	IdentityClient contracts.IdentityClient
	Storage        contracts.Storage
	BucketName     string
	Log            *zap.Logger
}

func NewProfileUsecase(identityClient contracts.IdentityClient, storage contracts.Storage, bucketName string, logger *zap.Logger) ProfileUsecase {
	return &profileUsecase{
		IdentityClient: identityClient,
		Storage:        storage,
		BucketName:     bucketName,
		Log:            logger,
	}
}

// UpdateProfile applies a sparse update to the caller's identity-provider
// record. An uploaded picture is stored first so its URL rides along in the
// same patch; unset fields never reach the provider.
func (uc *profileUsecase) UpdateProfile(ctx context.Context, identity *models.Identity, request *requests.UpdateIdentityProfile) (map[string]interface{}, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, identity.UserID),
	)

	if len(request.ProfilePictureData) > 0 {
		fileName := utils.GenerateFileName(constvars.ProfilePictureObjectPrefix, identity.UserID, request.ProfilePictureExtension)
		pictureURL, err := uc.Storage.UploadBase64Image(ctx, request.ProfilePictureData, uc.BucketName, fileName, request.ProfilePictureExtension)
		if err != nil {
			return nil, err
		}
		request.Picture = &pictureURL
	}

	patch := utils.BuildIdentityPatchBody(request)
	updated, err := uc.IdentityClient.UpdateUserRecord(ctx, identity.UserID, patch)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("profileUsecase.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, identity.UserID),
	)
	return updated, nil
}
