package stacks

import (
	"context"
	"errors"
	"testing"
	"time"

	"stackwise-service/internal/app/config"
	"stackwise-service/internal/app/models"
	"stackwise-service/internal/pkg/dto/requests"
	"stackwise-service/internal/pkg/exceptions"
	"stackwise-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockStatementFhirClient struct {
	mock.Mock
}

func (m *mockStatementFhirClient) CreateMedicationStatement(ctx context.Context, request *fhir_dto.MedicationStatement) (*fhir_dto.MedicationStatement, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fhir_dto.MedicationStatement), args.Error(1)
}

func (m *mockStatementFhirClient) PatchMedicationStatement(ctx context.Context, statementID string, operations []fhir_dto.PatchOperation) (*fhir_dto.MedicationStatement, error) {
	args := m.Called(ctx, statementID, operations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fhir_dto.MedicationStatement), args.Error(1)
}

func (m *mockStatementFhirClient) FindAllMedicationStatements(ctx context.Context) ([]fhir_dto.MedicationStatement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fhir_dto.MedicationStatement), args.Error(1)
}

type mockMedicationFhirClient struct {
	mock.Mock
}

func (m *mockMedicationFhirClient) CreateMedication(ctx context.Context, request *fhir_dto.Medication) (*fhir_dto.Medication, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fhir_dto.Medication), args.Error(1)
}

func (m *mockMedicationFhirClient) FindAllMedications(ctx context.Context) ([]fhir_dto.Medication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fhir_dto.Medication), args.Error(1)
}

func (m *mockMedicationFhirClient) FindMedicationByReference(ctx context.Context, reference string) (*fhir_dto.Medication, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fhir_dto.Medication), args.Error(1)
}

func (m *mockMedicationFhirClient) DeleteMedication(ctx context.Context, medicationID string) error {
	args := m.Called(ctx, medicationID)
	return args.Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type mockRedisRepository struct {
	mock.Mock
}

func (m *mockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) PublishStackEvent(ctx context.Context, event *models.StackEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type usecaseMocks struct {
	statements  *mockStatementFhirClient
	medications *mockMedicationFhirClient
	users       *mockUserRepository
	redis       *mockRedisRepository
	events      *mockEventPublisher
}

func newTestUsecase() (StackUsecase, *usecaseMocks) {
	m := &usecaseMocks{
		statements:  new(mockStatementFhirClient),
		medications: new(mockMedicationFhirClient),
		users:       new(mockUserRepository),
		redis:       new(mockRedisRepository),
		events:      new(mockEventPublisher),
	}
	internalConfig := &config.InternalConfig{
		Stack: config.Stack{MedicationNameCacheTTLInMinutes: 60},
	}
	uc := NewStackUsecase(m.statements, m.medications, m.users, m.redis, m.events, internalConfig, zap.NewNop())
	return uc, m
}

func TestCreateStatement(t *testing.T) {
	t.Run("Unknown email fails closed before any FHIR write", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.users.On("FindByEmail", mock.Anything, "missing@example.com").Return(nil, nil)

		result, err := uc.CreateStatement(context.Background(), &requests.CreateStack{
			UserEmail:  "missing@example.com",
			ResourceID: "42",
		})

		assert.Nil(t, result)
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)

		m.statements.AssertNotCalled(t, "CreateMedicationStatement", mock.Anything, mock.Anything)
		m.events.AssertNotCalled(t, "PublishStackEvent", mock.Anything, mock.Anything)
	})

	t.Run("User without patient ID fails closed", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.users.On("FindByEmail", mock.Anything, "jordan@example.com").Return(&models.User{
			ID:    "u-1",
			Email: "jordan@example.com",
		}, nil)

		result, err := uc.CreateStatement(context.Background(), &requests.CreateStack{
			UserEmail:  "jordan@example.com",
			ResourceID: "42",
		})

		assert.Nil(t, result)
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)

		m.statements.AssertNotCalled(t, "CreateMedicationStatement", mock.Anything, mock.Anything)
	})

	t.Run("Unparseable dosage transmits as zero", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.users.On("FindByEmail", mock.Anything, "jordan@example.com").Return(&models.User{
			ID:            "u-1",
			Email:         "jordan@example.com",
			FhirPatientID: "p-1",
		}, nil)

		var sent *fhir_dto.MedicationStatement
		m.statements.On("CreateMedicationStatement", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				sent = args.Get(1).(*fhir_dto.MedicationStatement)
			}).
			Return(&fhir_dto.MedicationStatement{
				ID:                  "stmt-1",
				MedicationReference: fhir_dto.Reference{Reference: "Medication/42"},
			}, nil)
		m.events.On("PublishStackEvent", mock.Anything, mock.Anything).Return(nil)

		result, err := uc.CreateStatement(context.Background(), &requests.CreateStack{
			UserEmail:    "jordan@example.com",
			ResourceID:   "42",
			DosageValue:  "abc",
			DosageUnit:   "mg",
			DosesPerWeek: "xyz",
		})

		require.NoError(t, err)
		assert.Equal(t, "stmt-1", result.Resource.ID)

		require.NotNil(t, sent)
		assert.Equal(t, "Patient/p-1", sent.Subject.Reference)
		assert.Equal(t, "Medication/42", sent.MedicationReference.Reference)
		assert.Equal(t, 0.0, sent.Dosage[0].DoseAndRate[0].DoseQuantity.Value)
		assert.Equal(t, 0, sent.Dosage[0].Timing.Repeat.Frequency)
	})

	t.Run("Event publish failure does not fail the request", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.users.On("FindByEmail", mock.Anything, "jordan@example.com").Return(&models.User{
			ID:            "u-1",
			FhirPatientID: "p-1",
		}, nil)
		m.statements.On("CreateMedicationStatement", mock.Anything, mock.Anything).Return(&fhir_dto.MedicationStatement{ID: "stmt-1"}, nil)
		m.events.On("PublishStackEvent", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		result, err := uc.CreateStatement(context.Background(), &requests.CreateStack{
			UserEmail:  "jordan@example.com",
			ResourceID: "42",
		})

		require.NoError(t, err)
		assert.Equal(t, "stmt-1", result.Resource.ID)
	})
}

func TestPatchStatement(t *testing.T) {
	uc, m := newTestUsecase()

	var gotOperations []fhir_dto.PatchOperation
	m.statements.On("PatchMedicationStatement", mock.Anything, "stmt-1", mock.Anything).
		Run(func(args mock.Arguments) {
			gotOperations = args.Get(2).([]fhir_dto.PatchOperation)
		}).
		Return(&fhir_dto.MedicationStatement{ID: "stmt-1"}, nil)
	m.events.On("PublishStackEvent", mock.Anything, mock.Anything).Return(nil)

	result, err := uc.PatchStatement(context.Background(), &requests.UpdateStack{
		ID:           "stmt-1",
		DosageValue:  "4",
		DosageUnit:   "mg",
		DosesPerWeek: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, "stmt-1", result.Resource.ID)

	require.Len(t, gotOperations, 2)
	assert.Equal(t, "/dosage/0/timing/repeat", gotOperations[0].Path)
	assert.Equal(t, "/dosage/0/doseAndRate/0/doseQuantity", gotOperations[1].Path)
}

func TestListStack(t *testing.T) {
	statements := []fhir_dto.MedicationStatement{
		{ID: "a", MedicationReference: fhir_dto.Reference{Reference: "Medication/10"}},
		{ID: "b", MedicationReference: fhir_dto.Reference{Reference: "Medication/10"}},
		{ID: "c", MedicationReference: fhir_dto.Reference{Reference: "Medication/11"}},
	}

	t.Run("Resolves names with sentinel for failures", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.statements.On("FindAllMedicationStatements", mock.Anything).Return(statements, nil)
		m.redis.On("Get", mock.Anything, mock.Anything).Return("", nil)
		m.redis.On("Set", mock.Anything, "medication:name:Medication/10", "Vitamin D", mock.Anything).Return(nil)
		m.medications.On("FindMedicationByReference", mock.Anything, "Medication/10").Return(&fhir_dto.Medication{
			ID:   "10",
			Code: &fhir_dto.CodeableConcept{Text: "Vitamin D"},
		}, nil)
		m.medications.On("FindMedicationByReference", mock.Anything, "Medication/11").Return(nil, errors.New("gone"))

		result, err := uc.ListStack(context.Background())
		require.NoError(t, err)
		require.Equal(t, 3, result.Count)

		names := map[string]string{}
		for _, item := range result.Items {
			names[item.Reference] = item.MedicationName
		}
		assert.Equal(t, "Vitamin D", names["Medication/10"])
		assert.Equal(t, "Unknown Medication", names["Medication/11"])

		m.medications.AssertNumberOfCalls(t, "FindMedicationByReference", 2)
	})

	t.Run("Mixed cache hit and miss resolve concurrently", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.statements.On("FindAllMedicationStatements", mock.Anything).Return(statements, nil)
		m.redis.On("Get", mock.Anything, "medication:name:Medication/10").Return("", nil)
		m.redis.On("Get", mock.Anything, "medication:name:Medication/11").Return("Magnesium", nil)
		m.redis.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		m.medications.On("FindMedicationByReference", mock.Anything, "Medication/10").
			Run(func(args mock.Arguments) {
				// Keep the lookup in flight while the cache hit is handled.
				time.Sleep(10 * time.Millisecond)
			}).
			Return(&fhir_dto.Medication{
				ID:   "10",
				Code: &fhir_dto.CodeableConcept{Text: "Vitamin D"},
			}, nil)

		result, err := uc.ListStack(context.Background())
		require.NoError(t, err)

		names := map[string]string{}
		for _, item := range result.Items {
			names[item.Reference] = item.MedicationName
		}
		assert.Equal(t, "Vitamin D", names["Medication/10"])
		assert.Equal(t, "Magnesium", names["Medication/11"])
		m.medications.AssertNumberOfCalls(t, "FindMedicationByReference", 1)
	})

	t.Run("Cache hit skips the FHIR lookup", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.statements.On("FindAllMedicationStatements", mock.Anything).Return(statements[:1], nil)
		m.redis.On("Get", mock.Anything, "medication:name:Medication/10").Return("Vitamin D", nil)

		result, err := uc.ListStack(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "Vitamin D", result.Items[0].MedicationName)
		m.medications.AssertNotCalled(t, "FindMedicationByReference", mock.Anything, mock.Anything)
	})

	t.Run("Nameless resource maps to the sentinel", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.statements.On("FindAllMedicationStatements", mock.Anything).Return(statements[2:], nil)
		m.redis.On("Get", mock.Anything, mock.Anything).Return("", nil)
		m.medications.On("FindMedicationByReference", mock.Anything, "Medication/11").Return(&fhir_dto.Medication{ID: "11"}, nil)

		result, err := uc.ListStack(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "Unknown Medication", result.Items[0].MedicationName)
		m.redis.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
