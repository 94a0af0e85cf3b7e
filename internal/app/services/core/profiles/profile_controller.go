package profiles

import (
	"context"
	"errors"
	"net/http"
	"stackwise-service/internal/app/config"
	"stackwise-service/internal/app/models"
	"stackwise-service/internal/pkg/constvars"
	"stackwise-service/internal/pkg/dto/requests"
	"stackwise-service/internal/pkg/exceptions"
	"stackwise-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ProfileController struct {
	Log            *zap.Logger
	ProfileUsecase ProfileUsecase
	InternalConfig *config.InternalConfig
}

func NewProfileController(logger *zap.Logger, profileUsecase ProfileUsecase, internalConfig *config.InternalConfig) *ProfileController {
	return &ProfileController{
		Log:            logger,
		ProfileUsecase: profileUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := r.Context().Value(constvars.CONTEXT_IDENTITY_KEY).(*models.Identity)
	if !ok || identity == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(errors.New("no identity in request context")))
		return
	}

	request := new(requests.UpdateIdentityProfile)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if request.ProfilePicture != "" {
		data, ext, err := utils.DecodeBase64Image(request.ProfilePicture)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
			return
		}

		err = utils.ValidateImageFormat(ext, constvars.ImageAllowedProfilePictureFormats)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
			return
		}

		err = utils.ValidateImageSize(data, ctrl.InternalConfig.App.ProfilePictureMaxSizeInMB)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
			return
		}

		request.ProfilePictureData = data
		request.ProfilePictureExtension = ext
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds)*time.Second)
	defer cancel()

	result, err := ctrl.ProfileUsecase.UpdateProfile(ctx, identity, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileUpdatedSuccessMessage, result)
}
