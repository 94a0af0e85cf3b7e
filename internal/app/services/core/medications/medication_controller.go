package medications

import (
	"context"
	"errors"
	"net/http"
	"stackwise-service/internal/app/config"
	"stackwise-service/internal/pkg/constvars"
	"stackwise-service/internal/pkg/dto/requests"
	"stackwise-service/internal/pkg/exceptions"
	"stackwise-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type MedicationController struct {
	Log               *zap.Logger
	MedicationUsecase MedicationUsecase
	InternalConfig    *config.InternalConfig
}

func NewMedicationController(logger *zap.Logger, medicationUsecase MedicationUsecase, internalConfig *config.InternalConfig) *MedicationController {
	return &MedicationController{
		Log:               logger,
		MedicationUsecase: medicationUsecase,
		InternalConfig:    internalConfig,
	}
}

func (ctrl *MedicationController) requestTimeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
}

func (ctrl *MedicationController) ListMedications(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.MedicationUsecase.ListMedications(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MedicationListSuccessMessage, result)
}

func (ctrl *MedicationController) GetMedicationByID(w http.ResponseWriter, r *http.Request) {
	medicationID := chi.URLParam(r, "medicationID")
	if medicationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(errors.New("missing url parameter"), "medicationID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.MedicationUsecase.GetMedicationByID(ctx, medicationID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MedicationGetSuccessMessage, result)
}

func (ctrl *MedicationController) CreateMedication(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateMedication)
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

	result, err := ctrl.MedicationUsecase.CreateMedication(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.MedicationCreatedSuccessMessage, result)
}

func (ctrl *MedicationController) DeleteMedication(w http.ResponseWriter, r *http.Request) {
	medicationID := chi.URLParam(r, "medicationID")
	if medicationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(errors.New("missing url parameter"), "medicationID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	err := ctrl.MedicationUsecase.DeleteMedication(ctx, medicationID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MedicationDeletedSuccessMessage, nil)
}
