package stacks

import (
	"context"
	"net/http"
	"stackwise-service/internal/app/config"
	"stackwise-service/internal/pkg/constvars"
	"stackwise-service/internal/pkg/dto/requests"
	"stackwise-service/internal/pkg/exceptions"
	"stackwise-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type StackController struct {
	Log            *zap.Logger
	StackUsecase   StackUsecase
	InternalConfig *config.InternalConfig
}

func NewStackController(logger *zap.Logger, stackUsecase StackUsecase, internalConfig *config.InternalConfig) *StackController {
	return &StackController{
		Log:            logger,
		StackUsecase:   stackUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *StackController) requestTimeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
}

func (ctrl *StackController) CreateStatement(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateStack)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.StackUsecase.CreateStatement(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.StackCreatedSuccessMessage, result)
}

func (ctrl *StackController) PatchStatement(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateStack)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.StackUsecase.PatchStatement(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StackUpdatedSuccessMessage, result)
}

func (ctrl *StackController) ListStack(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.StackUsecase.ListStack(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StackFetchSuccessMessage, result)
}
