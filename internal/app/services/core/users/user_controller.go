package users

import (
	"context"
	"net/http"
	"stackwise-service/internal/app/config"
	"stackwise-service/internal/pkg/dto/responses"
	"stackwise-service/internal/pkg/exceptions"
	"stackwise-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type UserController struct {
	Log            *zap.Logger
	UserUsecase    UserUsecase
	InternalConfig *config.InternalConfig
}

func NewUserController(logger *zap.Logger, userUsecase UserUsecase, internalConfig *config.InternalConfig) *UserController {
	return &UserController{
		Log:            logger,
		UserUsecase:    userUsecase,
		InternalConfig: internalConfig,
	}
}

// ListUsers serves the user directory. The response keeps its own envelope
// because directory consumers index into users at the top level.
func (ctrl *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds)*time.Second)
	defer cancel()

	users, err := ctrl.UserUsecase.ListUsers(ctx, r.URL.Query().Get("email"))
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, responses.UserDirectory{
		Success: true,
		Users:   users,
	})
}
