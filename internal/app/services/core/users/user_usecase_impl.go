package users

import (
	"context"
	"stackwise-service/internal/app/contracts"
	"stackwise-service/internal/app/models"
	"stackwise-service/internal/pkg/constvars"
	"stackwise-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

func NewUserUsecase(userRepository contracts.UserRepository, logger *zap.Logger) UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		Log:            logger,
	}
}

// ListUsers returns the directory, optionally filtered to a single email.
// An unknown email yields an empty list, not an error; the filter exists for
// the fail-closed patient lookup consumers do before writing statements.
func (uc *userUsecase) ListUsers(ctx context.Context, email string) ([]responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.ListUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	var userModels []models.User
	var err error
	if email != "" {
		var user *models.User
		user, err = uc.UserRepository.FindByEmail(ctx, email)
		if user != nil {
			userModels = []models.User{*user}
		}
	} else {
		userModels, err = uc.UserRepository.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	users := make([]responses.User, 0, len(userModels))
	for _, userModel := range userModels {
		users = append(users, responses.User{
			ID:            userModel.ID,
			Email:         userModel.Email,
			Username:      userModel.Username,
			FhirPatientID: userModel.FhirPatientID,
			Roles:         userModel.Roles,
			CreatedAt:     userModel.CreatedAt,
			UpdatedAt:     userModel.UpdatedAt,
		})
	}

	uc.Log.Info("userUsecase.ListUsers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(users)),
	)
	return users, nil
}
