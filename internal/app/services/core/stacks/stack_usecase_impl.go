package stacks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"stackwise-service/internal/app/config"
	"stackwise-service/internal/app/contracts"
	"stackwise-service/internal/app/models"
	"stackwise-service/internal/pkg/constvars"
	"stackwise-service/internal/pkg/dto/requests"
	"stackwise-service/internal/pkg/dto/responses"
	"stackwise-service/internal/pkg/exceptions"
	"stackwise-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type stackUsecase struct {
	StatementFhirClient  contracts.MedicationStatementFhirClient
	MedicationFhirClient contracts.MedicationFhirClient
	UserRepository       contracts.UserRepository
	RedisRepository      contracts.RedisRepository
	EventPublisher       contracts.EventPublisher
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
}

func NewStackUsecase(
	statementFhirClient contracts.MedicationStatementFhirClient,
	medicationFhirClient contracts.MedicationFhirClient,
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) StackUsecase {
	return &stackUsecase{
		StatementFhirClient:  statementFhirClient,
		MedicationFhirClient: medicationFhirClient,
		UserRepository:       userRepository,
		RedisRepository:      redisRepository,
		EventPublisher:       eventPublisher,
		InternalConfig:       internalConfig,
		Log:                  logger,
	}
}

// CreateStatement adds a supplement to a user's stack. The patient lookup is
// fail-closed: when the email resolves to no user, or the user carries no
// patient ID, nothing is written to the FHIR store.
func (uc *stackUsecase) CreateStatement(ctx context.Context, request *requests.CreateStack) (*responses.CreatedStatement, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("stackUsecase.CreateStatement called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.UserEmail),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.UserEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.Log.Warn("stackUsecase.CreateStatement no user for email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, request.UserEmail),
		)
		return nil, exceptions.ErrStackUserNotFound(fmt.Errorf("no user record for email %s", request.UserEmail))
	}
	if user.FhirPatientID == "" {
		uc.Log.Warn("stackUsecase.CreateStatement user has no patient ID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, request.UserEmail),
		)
		return nil, exceptions.ErrStackUserMissingPatientID(fmt.Errorf("user %s has no fhir patient id", user.ID))
	}

	statementID := utils.GenerateStatementID()
	resource := utils.BuildMedicationStatementResource(
		statementID,
		user.FhirPatientID,
		request.ResourceID,
		request.DosageValue,
		request.DosageUnit,
		request.DosesPerWeek,
	)

	created, err := uc.StatementFhirClient.CreateMedicationStatement(ctx, resource)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, &models.StackEvent{
		Type:                constvars.StackEventStatementCreated,
		StatementID:         created.ID,
		PatientID:           user.FhirPatientID,
		MedicationReference: created.MedicationReference.Reference,
		OccurredAt:          time.Now().UTC(),
	})

	uc.Log.Info("stackUsecase.CreateStatement succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatementIDKey, created.ID),
	)
	return &responses.CreatedStatement{Resource: created}, nil
}

// PatchStatement rewrites the dosage of an existing statement. The patch is
// always the same two replace operations; there is no version precondition,
// so concurrent updates resolve last-write-wins.
func (uc *stackUsecase) PatchStatement(ctx context.Context, request *requests.UpdateStack) (*responses.CreatedStatement, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("stackUsecase.PatchStatement called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatementIDKey, request.ID),
	)

	operations := utils.BuildDosagePatchOperations(request.DosageValue, request.DosageUnit, request.DosesPerWeek)
	patched, err := uc.StatementFhirClient.PatchMedicationStatement(ctx, request.ID, operations)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, &models.StackEvent{
		Type:                constvars.StackEventStatementPatched,
		StatementID:         request.ID,
		MedicationReference: patched.MedicationReference.Reference,
		OccurredAt:          time.Now().UTC(),
	})

	uc.Log.Info("stackUsecase.PatchStatement succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatementIDKey, request.ID),
	)
	return &responses.CreatedStatement{Resource: patched}, nil
}

func (uc *stackUsecase) ListStack(ctx context.Context) (*responses.Stack, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("stackUsecase.ListStack called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	statements, err := uc.StatementFhirClient.FindAllMedicationStatements(ctx)
	if err != nil {
		return nil, err
	}

	references := make([]string, 0, len(statements))
	for _, statement := range statements {
		references = append(references, statement.MedicationReference.Reference)
	}
	names := uc.resolveMedicationNames(ctx, references)

	items := make([]responses.StackItem, 0, len(statements))
	for _, statement := range statements {
		item := responses.StackItem{
			StatementID:    statement.ID,
			Reference:      statement.MedicationReference.Reference,
			MedicationName: constvars.UnknownMedicationDisplayName,
			Status:         statement.Status,
		}
		if name, ok := names[statement.MedicationReference.Reference]; ok {
			item.MedicationName = name
		}
		if len(statement.Dosage) > 0 {
			dosage := statement.Dosage[0]
			if dosage.Timing != nil {
				item.Frequency = dosage.Timing.Repeat.Frequency
				item.PeriodUnit = dosage.Timing.Repeat.PeriodUnit
			}
			if len(dosage.DoseAndRate) > 0 {
				item.DoseValue = dosage.DoseAndRate[0].DoseQuantity.Value
				item.DoseUnit = dosage.DoseAndRate[0].DoseQuantity.Unit
			}
		}
		if statement.Meta != nil {
			item.LastUpdated = statement.Meta.LastUpdated
		}
		items = append(items, item)
	}

	uc.Log.Info("stackUsecase.ListStack succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(items)),
	)
	return &responses.Stack{Items: items, Count: len(items)}, nil
}

// resolveMedicationNames turns medication references into display names. Each
// distinct reference is fetched at most once per call; failures and nameless
// resources map to the unknown-medication sentinel instead of failing the
// listing. The returned map is complete: it is only handed back after every
// in-flight fetch has finished.
func (uc *stackUsecase) resolveMedicationNames(ctx context.Context, references []string) map[string]string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	unique := make([]string, 0, len(references))
	seen := make(map[string]struct{}, len(references))
	for _, reference := range references {
		if reference == "" {
			continue
		}
		if _, ok := seen[reference]; ok {
			continue
		}
		seen[reference] = struct{}{}
		unique = append(unique, reference)
	}

	names := make(map[string]string, len(unique))
	cacheTTL := time.Duration(uc.InternalConfig.Stack.MedicationNameCacheTTLInMinutes) * time.Minute

	// Cache reads happen first, on this goroutine; only misses fan out. The
	// map is touched concurrently by lookup goroutines alone, under mu.
	misses := make([]string, 0, len(unique))
	for _, reference := range unique {
		cached, err := uc.RedisRepository.Get(ctx, constvars.MedicationNameCacheKeyPrefix+reference)
		if err == nil && cached != "" {
			// The repository stores values JSON-marshaled.
			name := cached
			var decoded string
			if jsonErr := json.Unmarshal([]byte(cached), &decoded); jsonErr == nil && decoded != "" {
				name = decoded
			}
			names[reference] = name
			continue
		}
		misses = append(misses, reference)
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, reference := range misses {
		wg.Add(1)
		go func(reference string) {
			defer wg.Done()

			name := constvars.UnknownMedicationDisplayName
			medication, err := uc.MedicationFhirClient.FindMedicationByReference(ctx, reference)
			if err != nil {
				uc.Log.Warn("stackUsecase.resolveMedicationNames lookup failed",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingReferenceKey, reference),
					zap.Error(err),
				)
			} else if displayName := medication.DisplayName(); displayName != "" {
				name = displayName
				if cacheErr := uc.RedisRepository.Set(ctx, constvars.MedicationNameCacheKeyPrefix+reference, name, cacheTTL); cacheErr != nil {
					uc.Log.Warn("stackUsecase.resolveMedicationNames cache write failed",
						zap.String(constvars.LoggingRequestIDKey, requestID),
						zap.String(constvars.LoggingReferenceKey, reference),
						zap.Error(cacheErr),
					)
				}
			}

			mu.Lock()
			names[reference] = name
			mu.Unlock()
		}(reference)
	}
	wg.Wait()

	return names
}

// publishEvent is best-effort; stack mutations never fail because the
// activity queue is down.
func (uc *stackUsecase) publishEvent(ctx context.Context, event *models.StackEvent) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	err := uc.EventPublisher.PublishStackEvent(ctx, event)
	if err != nil {
		uc.Log.Warn("stackUsecase.publishEvent failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, event.Type),
			zap.Error(err),
		)
	}
}
