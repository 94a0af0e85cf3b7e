package medications

import (
	"context"

	"stackwise-service/internal/app/config"
	"stackwise-service/internal/app/contracts"
	"stackwise-service/internal/pkg/constvars"
	"stackwise-service/internal/pkg/dto/requests"
	"stackwise-service/internal/pkg/dto/responses"
	"stackwise-service/internal/pkg/fhir_dto"
	"stackwise-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type medicationUsecase struct {
	MedicationFhirClient contracts.MedicationFhirClient
	RedisRepository      contracts.RedisRepository
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
}

func NewMedicationUsecase(
	medicationFhirClient contracts.MedicationFhirClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) MedicationUsecase {
	return &medicationUsecase{
		MedicationFhirClient: medicationFhirClient,
		RedisRepository:      redisRepository,
		InternalConfig:       internalConfig,
		Log:                  logger,
	}
}

func (uc *medicationUsecase) ListMedications(ctx context.Context) (*responses.MedicationList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicationUsecase.ListMedications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	medications, err := uc.MedicationFhirClient.FindAllMedications(ctx)
	if err != nil {
		return nil, err
	}

	return &responses.MedicationList{
		Resources: medications,
		Count:     len(medications),
	}, nil
}

func (uc *medicationUsecase) GetMedicationByID(ctx context.Context, medicationID string) (*fhir_dto.Medication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicationUsecase.GetMedicationByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicationIDKey, medicationID),
	)

	return uc.MedicationFhirClient.FindMedicationByReference(ctx, constvars.ResourceMedication+"/"+medicationID)
}

func (uc *medicationUsecase) CreateMedication(ctx context.Context, request *requests.CreateMedication) (*fhir_dto.Medication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicationUsecase.CreateMedication called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	resource := utils.BuildMedicationResource(request.Name)
	created, err := uc.MedicationFhirClient.CreateMedication(ctx, resource)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("medicationUsecase.CreateMedication succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicationIDKey, created.ID),
	)
	return created, nil
}

// DeleteMedication removes the catalog entry and invalidates any cached
// display name so stale names do not outlive the resource.
func (uc *medicationUsecase) DeleteMedication(ctx context.Context, medicationID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicationUsecase.DeleteMedication called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicationIDKey, medicationID),
	)

	err := uc.MedicationFhirClient.DeleteMedication(ctx, medicationID)
	if err != nil {
		return err
	}

	cacheKey := constvars.MedicationNameCacheKeyPrefix + constvars.ResourceMedication + "/" + medicationID
	if cacheErr := uc.RedisRepository.Delete(ctx, cacheKey); cacheErr != nil {
		uc.Log.Warn("medicationUsecase.DeleteMedication cache invalidation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMedicationIDKey, medicationID),
			zap.Error(cacheErr),
		)
	}
	return nil
}
