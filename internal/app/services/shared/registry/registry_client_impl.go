package registry

import (
	"audicare-service/internal/app/contracts"
	"audicare-service/internal/pkg/constvars"
	"audicare-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	registryClientInstance contracts.RegistryClient
	onceRegistryClient     sync.Once
)

type registryClient struct {
	BaseUrl      string
	Log          *zap.Logger
	Credentials  contracts.CredentialProvider
	Decoder      contracts.EnvelopeDecoder
	Limiter      contracts.RedisRepository
	MaxPerMinute int
	HTTPClient   *http.Client
}

func NewRegistryClient(
	baseUrl string,
	timeout time.Duration,
	maxPerMinute int,
	credentials contracts.CredentialProvider,
	decoder contracts.EnvelopeDecoder,
	limiter contracts.RedisRepository,
	logger *zap.Logger,
) contracts.RegistryClient {
	onceRegistryClient.Do(func() {
		client := &registryClient{
			BaseUrl:      baseUrl,
			Log:          logger,
			Credentials:  credentials,
			Decoder:      decoder,
			Limiter:      limiter,
			MaxPerMinute: maxPerMinute,
			HTTPClient:   &http.Client{Timeout: timeout},
		}
		registryClientInstance = client
	})
	return registryClientInstance
}

func (c *registryClient) CreateRecord(ctx context.Context, resourcePath string, payload map[string]interface{}) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("registryClient.CreateRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, resourcePath),
	)

	body, err := c.send(ctx, constvars.MethodPost, c.BaseUrl+resourcePath, payload, constvars.StatusCreated)
	if err != nil {
		c.Log.Error("registryClient.CreateRecord request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, resourcePath),
			zap.Error(err),
		)
		return 0, err
	}

	record, err := c.decodeRecord(body, resourcePath)
	if err != nil {
		c.Log.Error("registryClient.CreateRecord error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, resourcePath),
			zap.Error(err),
		)
		return 0, err
	}

	c.Log.Info("registryClient.CreateRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, resourcePath),
		zap.Int64(constvars.LoggingBackendIDKey, record.ID),
	)
	return record.ID, nil
}

func (c *registryClient) UpdateRecord(ctx context.Context, resourcePath string, recordID int64, payload map[string]interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("registryClient.UpdateRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, resourcePath),
		zap.Int64(constvars.LoggingBackendIDKey, recordID),
	)

	endpoint := fmt.Sprintf("%s%s/%d", c.BaseUrl, resourcePath, recordID)
	_, err := c.send(ctx, constvars.MethodPut, endpoint, payload, constvars.StatusOK)
	if err != nil {
		c.Log.Error("registryClient.UpdateRecord request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, resourcePath),
			zap.Int64(constvars.LoggingBackendIDKey, recordID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("registryClient.UpdateRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, resourcePath),
		zap.Int64(constvars.LoggingBackendIDKey, recordID),
	)
	return nil
}

func (c *registryClient) SearchPatientByClinicRef(ctx context.Context, clinicRef string) (*contracts.RegistryRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("registryClient.SearchPatientByClinicRef called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicRefKey, clinicRef),
	)

	endpoint := fmt.Sprintf("%s%s?%s=%s",
		c.BaseUrl, constvars.ResourcePatients,
		constvars.RegistryQueryClinicRef, url.QueryEscape(clinicRef),
	)
	body, err := c.send(ctx, constvars.MethodGet, endpoint, nil, constvars.StatusOK)
	if err != nil {
		c.Log.Error("registryClient.SearchPatientByClinicRef request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClinicRefKey, clinicRef),
			zap.Error(err),
		)
		return nil, err
	}

	record, err := c.decodeFirstRecord(body, constvars.ResourcePatients)
	if err != nil {
		c.Log.Error("registryClient.SearchPatientByClinicRef error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClinicRefKey, clinicRef),
			zap.Error(err),
		)
		return nil, err
	}

	if record == nil {
		c.Log.Info("registryClient.SearchPatientByClinicRef no match",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClinicRefKey, clinicRef),
		)
		return nil, nil
	}

	c.Log.Info("registryClient.SearchPatientByClinicRef succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicRefKey, clinicRef),
		zap.Int64(constvars.LoggingPatientIDKey, record.ID),
	)
	return record, nil
}

func (c *registryClient) FindSectionByPatient(ctx context.Context, resourcePath string, patientID int64) (*contracts.RegistryRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("registryClient.FindSectionByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, resourcePath),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	endpoint := fmt.Sprintf("%s%s?%s=%d",
		c.BaseUrl, resourcePath,
		constvars.RegistryQueryPatientID, patientID,
	)
	body, err := c.send(ctx, constvars.MethodGet, endpoint, nil, constvars.StatusOK)
	if err != nil {
		c.Log.Error("registryClient.FindSectionByPatient request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, resourcePath),
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	record, err := c.decodeFirstRecord(body, resourcePath)
	if err != nil {
		c.Log.Error("registryClient.FindSectionByPatient error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, resourcePath),
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("registryClient.FindSectionByPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, resourcePath),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
		zap.Bool(constvars.LoggingSuccessKey, record != nil),
	)
	return record, nil
}

func (c *registryClient) FetchPatientBundle(ctx context.Context, patientID int64) (map[string]*contracts.RegistryRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("registryClient.FetchPatientBundle called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	endpoint := fmt.Sprintf("%s%s/%d%s",
		c.BaseUrl, constvars.ResourcePatients, patientID, constvars.RegistryBundleSuffix,
	)
	body, err := c.send(ctx, constvars.MethodGet, endpoint, nil, constvars.StatusOK)
	if err != nil {
		c.Log.Error("registryClient.FetchPatientBundle request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	var rawSections map[string]map[string]interface{}
	if err := json.Unmarshal(body, &rawSections); err != nil {
		c.Log.Error("registryClient.FetchPatientBundle error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.RegistryBundleSuffix)
	}

	bundle := make(map[string]*contracts.RegistryRecord, len(rawSections))
	for sectionKey, raw := range rawSections {
		if raw == nil {
			continue
		}
		bundle[sectionKey] = recordFromRaw(raw)
	}

	c.Log.Info("registryClient.FetchPatientBundle succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
		zap.Int("section_count", len(bundle)),
	)
	return bundle, nil
}

// send runs one outbound registry request through the quota gate, attaches
// credentials, unwraps the response envelope and classifies failures.
func (c *registryClient) send(ctx context.Context, method, endpoint string, payload map[string]interface{}, wantStatus int) ([]byte, error) {
	if err := c.checkQuota(ctx); err != nil {
		return nil, err
	}

	var requestBody io.Reader
	if payload != nil {
		requestJSON, err := json.Marshal(payload)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		requestBody = bytes.NewBuffer(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, requestBody)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if token, ok := c.Credentials.BearerToken(ctx); ok {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, endpoint)
	}

	if resp.StatusCode != wantStatus {
		// Failure bodies may arrive enveloped too; classification needs the
		// plain structure. A body the decoder cannot unwrap classifies as-is.
		if decoded, decodeErr := c.Decoder.Decode(bodyBytes); decodeErr == nil {
			bodyBytes = decoded
		}
		return nil, classifyFailure(resp.StatusCode, bodyBytes)
	}

	return c.Decoder.Decode(bodyBytes)
}

func (c *registryClient) checkQuota(ctx context.Context) error {
	if c.MaxPerMinute <= 0 || c.Limiter == nil {
		return nil
	}

	window := time.Now().Unix() / 60
	key := fmt.Sprintf("limiter:%s:%d", constvars.RegistryLimiterGroup, window)
	count, err := c.Limiter.IncrementWithTTL(ctx, key, time.Minute)
	if err != nil {
		// The quota gate protects the registry from us, not us from it; a
		// broken counter must not take persistence down with it.
		c.Log.Warn("registryClient.checkQuota limiter unavailable", zap.Error(err))
		return nil
	}
	if count > int64(c.MaxPerMinute) {
		return exceptions.ErrRegistryOverQuota()
	}
	return nil
}

func (c *registryClient) decodeRecord(body []byte, resourcePath string) (*contracts.RegistryRecord, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourcePath)
	}
	record := recordFromRaw(raw)
	if record.ID == 0 {
		return nil, exceptions.ErrDecodeResponse(fmt.Errorf("record has no id"), resourcePath)
	}
	return record, nil
}

func (c *registryClient) decodeFirstRecord(body []byte, resourcePath string) (*contracts.RegistryRecord, error) {
	var rawList []map[string]interface{}
	if err := json.Unmarshal(body, &rawList); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourcePath)
	}
	if len(rawList) == 0 {
		return nil, nil
	}
	return recordFromRaw(rawList[0]), nil
}

func recordFromRaw(raw map[string]interface{}) *contracts.RegistryRecord {
	record := &contracts.RegistryRecord{Fields: make(map[string]interface{}, len(raw))}
	for key, value := range raw {
		if key == "id" {
			if id, ok := value.(float64); ok {
				record.ID = int64(id)
			}
			continue
		}
		record.Fields[key] = value
	}
	return record
}

func classifyFailure(statusCode int, body []byte) *contracts.RegistryFailure {
	failure := &contracts.RegistryFailure{Class: contracts.FailureOther}
	switch {
	case statusCode == constvars.StatusNotFound:
		failure.Class = contracts.FailureNotFound
	case statusCode == constvars.StatusBadRequest || statusCode == constvars.StatusUnprocessableEntity:
		failure.Class = contracts.FailureBadRequest
	}

	var parsed struct {
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		failure.Message = parsed.Message
		for _, fieldError := range parsed.Errors {
			failure.Fields = append(failure.Fields, contracts.FieldError{
				Field:   fieldError.Field,
				Message: fieldError.Message,
			})
		}
	}
	if failure.Message == "" {
		failure.Message = fmt.Sprintf("registry returned status %d", statusCode)
	}
	return failure
}
