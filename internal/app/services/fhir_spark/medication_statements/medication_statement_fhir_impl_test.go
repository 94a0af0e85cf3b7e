package medication_statements

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"stackwise-service/internal/pkg/exceptions"
	"stackwise-service/internal/pkg/fhir_dto"
	"stackwise-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateMedicationStatement(t *testing.T) {
	t.Run("Posts FHIR JSON and returns the stored resource", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/MedicationStatement", r.URL.Path)
			assert.Equal(t, "application/fhir+json", r.Header.Get("Content-Type"))

			body, _ := io.ReadAll(r.Body)
			var statement fhir_dto.MedicationStatement
			require.NoError(t, json.Unmarshal(body, &statement))
			assert.Equal(t, "Patient/p-1", statement.Subject.Reference)

			w.WriteHeader(http.StatusCreated)
			w.Write(body)
		}))
		defer server.Close()

		client := NewMedicationStatementFhirClient(server.URL+"/", zap.NewNop())
		resource := utils.BuildMedicationStatementResource("stmt-1", "p-1", "42", "2", "mg", "3")

		created, err := client.CreateMedicationStatement(context.Background(), resource)
		require.NoError(t, err)
		assert.Equal(t, "stmt-1", created.ID)
	})

	t.Run("Upstream rejection carries status and body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"resourceType":"OperationOutcome"}`))
		}))
		defer server.Close()

		client := NewMedicationStatementFhirClient(server.URL+"/", zap.NewNop())
		resource := utils.BuildMedicationStatementResource("stmt-1", "p-1", "42", "2", "mg", "3")

		created, err := client.CreateMedicationStatement(context.Background(), resource)
		assert.Nil(t, created)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnprocessableEntity, customErr.StatusCode)
		assert.Contains(t, customErr.DevMessage, "OperationOutcome")
	})
}

func TestPatchMedicationStatement(t *testing.T) {
	t.Run("Sends exactly the two dosage operations as json-patch", func(t *testing.T) {
		var gotContentType string
		var gotOperations []fhir_dto.PatchOperation
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/MedicationStatement/stmt-1", r.URL.Path)
			gotContentType = r.Header.Get("Content-Type")

			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &gotOperations))

			json.NewEncoder(w).Encode(fhir_dto.MedicationStatement{ID: "stmt-1"})
		}))
		defer server.Close()

		client := NewMedicationStatementFhirClient(server.URL+"/", zap.NewNop())
		operations := utils.BuildDosagePatchOperations("4", "mg", "2")

		patched, err := client.PatchMedicationStatement(context.Background(), "stmt-1", operations)
		require.NoError(t, err)
		assert.Equal(t, "stmt-1", patched.ID)

		assert.Equal(t, "application/json-patch+json", gotContentType)
		require.Len(t, gotOperations, 2)
		assert.Equal(t, "replace", gotOperations[0].Op)
		assert.Equal(t, "/dosage/0/timing/repeat", gotOperations[0].Path)
		assert.Equal(t, "replace", gotOperations[1].Op)
		assert.Equal(t, "/dosage/0/doseAndRate/0/doseQuantity", gotOperations[1].Path)
	})
}

func TestFindAllMedicationStatements(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("_count"))

		w.Write([]byte(`{
			"resourceType": "Bundle",
			"total": 2,
			"entry": [
				{"resource": {"resourceType": "MedicationStatement", "id": "a", "medicationReference": {"reference": "Medication/10"}}},
				{"resource": {"resourceType": "MedicationStatement", "id": "b", "medicationReference": {"reference": "Medication/11"}}}
			]
		}`))
	}))
	defer server.Close()

	client := NewMedicationStatementFhirClient(server.URL+"/", zap.NewNop())
	statements, err := client.FindAllMedicationStatements(context.Background())
	require.NoError(t, err)

	require.Len(t, statements, 2)
	assert.Equal(t, "Medication/10", statements[0].MedicationReference.Reference)
	assert.Equal(t, "Medication/11", statements[1].MedicationReference.Reference)
}
