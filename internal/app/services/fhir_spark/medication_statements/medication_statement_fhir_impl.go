package medication_statements

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"stackwise-service/internal/app/contracts"
	"stackwise-service/internal/pkg/constvars"
	"stackwise-service/internal/pkg/exceptions"
	"stackwise-service/internal/pkg/fhir_dto"

	"go.uber.org/zap"
)

type medicationStatementFhirClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewMedicationStatementFhirClient(baseUrl string, logger *zap.Logger) contracts.MedicationStatementFhirClient {
	return &medicationStatementFhirClient{
		BaseUrl: baseUrl + constvars.ResourceMedicationStatement,
		Log:     logger,
	}
}

func (c *medicationStatementFhirClient) CreateMedicationStatement(ctx context.Context, request *fhir_dto.MedicationStatement) (*fhir_dto.MedicationStatement, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("medicationStatementFhirClient.CreateMedicationStatement called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("medicationStatementFhirClient.CreateMedicationStatement error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("medicationStatementFhirClient.CreateMedicationStatement error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("medicationStatementFhirClient.CreateMedicationStatement error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.Log.Error("medicationStatementFhirClient.CreateMedicationStatement FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrFHIRUpstream(resp.StatusCode, constvars.ResourceMedicationStatement, string(bodyBytes), c.BaseUrl)
	}

	statementFhir := new(fhir_dto.MedicationStatement)
	err = json.NewDecoder(resp.Body).Decode(&statementFhir)
	if err != nil {
		c.Log.Error("medicationStatementFhirClient.CreateMedicationStatement error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceMedicationStatement)
	}

	c.Log.Info("medicationStatementFhirClient.CreateMedicationStatement succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatementIDKey, statementFhir.ID),
	)
	return statementFhir, nil
}

// PatchMedicationStatement sends a JSON-Patch document to the FHIR store.
// Callers control the operations; this method only moves them over the wire
// with the json-patch media type.
func (c *medicationStatementFhirClient) PatchMedicationStatement(ctx context.Context, statementID string, operations []fhir_dto.PatchOperation) (*fhir_dto.MedicationStatement, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("medicationStatementFhirClient.PatchMedicationStatement called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatementIDKey, statementID),
	)

	requestJSON, err := json.Marshal(operations)
	if err != nil {
		c.Log.Error("medicationStatementFhirClient.PatchMedicationStatement error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := fmt.Sprintf("%s/%s", c.BaseUrl, statementID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPatch, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("medicationStatementFhirClient.PatchMedicationStatement error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONPatchJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("medicationStatementFhirClient.PatchMedicationStatement error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.Log.Error("medicationStatementFhirClient.PatchMedicationStatement FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStatementIDKey, statementID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrFHIRUpstream(resp.StatusCode, constvars.ResourceMedicationStatement, string(bodyBytes), endpoint)
	}

	statementFhir := new(fhir_dto.MedicationStatement)
	err = json.NewDecoder(resp.Body).Decode(&statementFhir)
	if err != nil {
		c.Log.Error("medicationStatementFhirClient.PatchMedicationStatement error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceMedicationStatement)
	}

	c.Log.Info("medicationStatementFhirClient.PatchMedicationStatement succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatementIDKey, statementFhir.ID),
	)
	return statementFhir, nil
}

func (c *medicationStatementFhirClient) FindAllMedicationStatements(ctx context.Context) ([]fhir_dto.MedicationStatement, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("medicationStatementFhirClient.FindAllMedicationStatements called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	endpoint := fmt.Sprintf("%s?_count=%d", c.BaseUrl, constvars.FhirListPageSize)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		c.Log.Error("medicationStatementFhirClient.FindAllMedicationStatements error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("medicationStatementFhirClient.FindAllMedicationStatements error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.Log.Error("medicationStatementFhirClient.FindAllMedicationStatements FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrFHIRUpstream(resp.StatusCode, constvars.ResourceMedicationStatement, string(bodyBytes), endpoint)
	}

	bundle := new(fhir_dto.FHIRBundle)
	err = json.NewDecoder(resp.Body).Decode(&bundle)
	if err != nil {
		c.Log.Error("medicationStatementFhirClient.FindAllMedicationStatements error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceMedicationStatement)
	}

	statements := make([]fhir_dto.MedicationStatement, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		var statement fhir_dto.MedicationStatement
		err = json.Unmarshal(entry.Resource, &statement)
		if err != nil {
			c.Log.Error("medicationStatementFhirClient.FindAllMedicationStatements error unmarshaling entry",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceMedicationStatement)
		}
		statements = append(statements, statement)
	}

	c.Log.Info("medicationStatementFhirClient.FindAllMedicationStatements succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(statements)),
	)
	return statements, nil
}
