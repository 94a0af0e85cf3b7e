package medications

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

type medicationFhirClient struct {
	BaseUrl     string
	FhirBaseUrl string
	Log         *zap.Logger
}

func NewMedicationFhirClient(baseUrl string, logger *zap.Logger) contracts.MedicationFhirClient {
	return &medicationFhirClient{
		BaseUrl:     baseUrl + constvars.ResourceMedication,
		FhirBaseUrl: baseUrl,
		Log:         logger,
	}
}

func (c *medicationFhirClient) CreateMedication(ctx context.Context, request *fhir_dto.Medication) (*fhir_dto.Medication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("medicationFhirClient.CreateMedication called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("medicationFhirClient.CreateMedication error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("medicationFhirClient.CreateMedication error creating HTTP request",
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
		c.Log.Error("medicationFhirClient.CreateMedication error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.Log.Error("medicationFhirClient.CreateMedication FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrFHIRUpstream(resp.StatusCode, constvars.ResourceMedication, string(bodyBytes), c.BaseUrl)
	}

	medicationFhir := new(fhir_dto.Medication)
	err = json.NewDecoder(resp.Body).Decode(&medicationFhir)
	if err != nil {
		c.Log.Error("medicationFhirClient.CreateMedication error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceMedication)
	}

	c.Log.Info("medicationFhirClient.CreateMedication succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicationIDKey, medicationFhir.ID),
	)
	return medicationFhir, nil
}

func (c *medicationFhirClient) FindAllMedications(ctx context.Context) ([]fhir_dto.Medication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("medicationFhirClient.FindAllMedications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	endpoint := fmt.Sprintf("%s?_count=%d", c.BaseUrl, constvars.FhirListPageSize)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		c.Log.Error("medicationFhirClient.FindAllMedications error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("medicationFhirClient.FindAllMedications error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.Log.Error("medicationFhirClient.FindAllMedications FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrFHIRUpstream(resp.StatusCode, constvars.ResourceMedication, string(bodyBytes), endpoint)
	}

	bundle := new(fhir_dto.FHIRBundle)
	err = json.NewDecoder(resp.Body).Decode(&bundle)
	if err != nil {
		c.Log.Error("medicationFhirClient.FindAllMedications error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceMedication)
	}

	medications := make([]fhir_dto.Medication, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		var medication fhir_dto.Medication
		err = json.Unmarshal(entry.Resource, &medication)
		if err != nil {
			c.Log.Error("medicationFhirClient.FindAllMedications error unmarshaling entry",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceMedication)
		}
		medications = append(medications, medication)
	}

	c.Log.Info("medicationFhirClient.FindAllMedications succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(medications)),
	)
	return medications, nil
}

// FindMedicationByReference reads a medication by its relative reference,
// e.g. "Medication/42". The reference is appended to the FHIR base URL as-is,
// mirroring how references arrive on MedicationStatement resources.
func (c *medicationFhirClient) FindMedicationByReference(ctx context.Context, reference string) (*fhir_dto.Medication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("medicationFhirClient.FindMedicationByReference called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReferenceKey, reference),
	)

	endpoint := c.FhirBaseUrl + reference
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		c.Log.Error("medicationFhirClient.FindMedicationByReference error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("medicationFhirClient.FindMedicationByReference error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.Log.Error("medicationFhirClient.FindMedicationByReference FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReferenceKey, reference),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrFHIRUpstream(resp.StatusCode, constvars.ResourceMedication, string(bodyBytes), endpoint)
	}

	medicationFhir := new(fhir_dto.Medication)
	err = json.NewDecoder(resp.Body).Decode(&medicationFhir)
	if err != nil {
		c.Log.Error("medicationFhirClient.FindMedicationByReference error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceMedication)
	}

	c.Log.Info("medicationFhirClient.FindMedicationByReference succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicationIDKey, medicationFhir.ID),
	)
	return medicationFhir, nil
}

func (c *medicationFhirClient) DeleteMedication(ctx context.Context, medicationID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("medicationFhirClient.DeleteMedication called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicationIDKey, medicationID),
	)

	endpoint := fmt.Sprintf("%s/%s", c.BaseUrl, medicationID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodDelete, endpoint, nil)
	if err != nil {
		c.Log.Error("medicationFhirClient.DeleteMedication error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("medicationFhirClient.DeleteMedication error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.Log.Error("medicationFhirClient.DeleteMedication FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMedicationIDKey, medicationID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return exceptions.ErrFHIRUpstream(resp.StatusCode, constvars.ResourceMedication, string(bodyBytes), endpoint)
	}

	c.Log.Info("medicationFhirClient.DeleteMedication succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicationIDKey, medicationID),
	)
	return nil
}
