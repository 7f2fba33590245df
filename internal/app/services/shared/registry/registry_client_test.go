package registry

import (
	"audicare-service/internal/app/contracts"
	"audicare-service/internal/pkg/constvars"
	"audicare-service/internal/pkg/exceptions"
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLimiter struct {
	mu     sync.Mutex
	counts map[string]int64
	err    error
}

func (f *fakeLimiter) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}

func (f *fakeLimiter) Get(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (f *fakeLimiter) Delete(_ context.Context, _ string) error {
	return nil
}

func (f *fakeLimiter) IncrementWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counts == nil {
		f.counts = make(map[string]int64)
	}
	f.counts[key]++
	return f.counts[key], nil
}

func newTestClient(t *testing.T, server *httptest.Server, maxPerMinute int, limiter contracts.RedisRepository) *registryClient {
	t.Helper()
	return &registryClient{
		BaseUrl:      server.URL,
		Log:          zap.NewNop(),
		Credentials:  NewStaticCredentialProvider("service-token"),
		Decoder:      NewEnvelopeDecoder(),
		Limiter:      limiter,
		MaxPerMinute: maxPerMinute,
		HTTPClient:   server.Client(),
	}
}

func wrapEnvelope(t *testing.T, payload interface{}) []byte {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	wrapped, err := json.Marshal(map[string]string{
		constvars.RegistryEnvelopeKey: base64.StdEncoding.EncodeToString(raw),
	})
	require.NoError(t, err)
	return wrapped
}

func TestRegistryClient_CreateRecord(t *testing.T) {
	t.Run("Created Record Returns Backend ID", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.MethodPost, r.Method)
			assert.Equal(t, constvars.ResourceEarScreenings, r.URL.Path)
			assert.Equal(t, "Bearer service-token", r.Header.Get(constvars.HeaderAuthorization))
			w.WriteHeader(http.StatusCreated)
			w.Write(wrapEnvelope(t, map[string]interface{}{"id": 41, "leftEarCanal": "Clear"}))
		}))
		defer server.Close()

		client := newTestClient(t, server, 0, nil)
		backendID, err := client.CreateRecord(context.Background(), constvars.ResourceEarScreenings, map[string]interface{}{
			"leftEarCanal": "Clear",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(41), backendID)
	})

	t.Run("Rejected Payload Yields Structured Failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"message": "validation failed",
				"errors": []map[string]string{
					{"field": "dateOfBirth", "message": "must be a past date"},
				},
			})
		}))
		defer server.Close()

		client := newTestClient(t, server, 0, nil)
		_, err := client.CreateRecord(context.Background(), constvars.ResourcePatients, map[string]interface{}{})
		require.Error(t, err)

		failure, ok := err.(*contracts.RegistryFailure)
		require.True(t, ok)
		assert.Equal(t, contracts.FailureBadRequest, failure.Class)
		assert.Equal(t, "dateOfBirth: must be a past date", failure.SectionMessage())
	})

	t.Run("Envelope Wrapped Failure Keeps Structured Message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write(wrapEnvelope(t, map[string]interface{}{
				"message": "validation failed",
				"errors": []map[string]string{
					{"field": "dateOfBirth", "message": "must be a past date"},
				},
			}))
		}))
		defer server.Close()

		client := newTestClient(t, server, 0, nil)
		_, err := client.CreateRecord(context.Background(), constvars.ResourcePatients, map[string]interface{}{})
		require.Error(t, err)

		failure, ok := err.(*contracts.RegistryFailure)
		require.True(t, ok)
		assert.Equal(t, contracts.FailureBadRequest, failure.Class)
		assert.Equal(t, "dateOfBirth: must be a past date", failure.SectionMessage())
	})

	t.Run("Malformed Created Body Is A Decode Failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte("not-json"))
		}))
		defer server.Close()

		client := newTestClient(t, server, 0, nil)
		_, err := client.CreateRecord(context.Background(), constvars.ResourceEarScreenings, map[string]interface{}{})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
		assert.Contains(t, customErr.DevMessage, constvars.ResourceEarScreenings)
	})

	t.Run("Unreadable Failure Body Still Classifies", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
		}))
		defer server.Close()

		client := newTestClient(t, server, 0, nil)
		_, err := client.CreateRecord(context.Background(), constvars.ResourceFittings, map[string]interface{}{})
		require.Error(t, err)

		failure, ok := err.(*contracts.RegistryFailure)
		require.True(t, ok)
		assert.Equal(t, contracts.FailureOther, failure.Class)
		assert.NotEmpty(t, failure.SectionMessage())
	})
}

func TestRegistryClient_UpdateRecord(t *testing.T) {
	t.Run("Update Targets Record Path", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.MethodPut, r.Method)
			assert.Equal(t, constvars.ResourceFittings+"/77", r.URL.Path)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id":77}`))
		}))
		defer server.Close()

		client := newTestClient(t, server, 0, nil)
		err := client.UpdateRecord(context.Background(), constvars.ResourceFittings, 77, map[string]interface{}{
			"deviceModel": "Aria 2",
		})
		assert.NoError(t, err)
	})

	t.Run("Missing Record Yields Not Found Class", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "record not found"})
		}))
		defer server.Close()

		client := newTestClient(t, server, 0, nil)
		err := client.UpdateRecord(context.Background(), constvars.ResourceFittings, 12, map[string]interface{}{})
		require.Error(t, err)

		failure, ok := err.(*contracts.RegistryFailure)
		require.True(t, ok)
		assert.Equal(t, contracts.FailureNotFound, failure.Class)
	})
}

func TestRegistryClient_SearchPatientByClinicRef(t *testing.T) {
	t.Run("Match Returns First Record", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "SHF-001", r.URL.Query().Get(constvars.RegistryQueryClinicRef))
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode([]map[string]interface{}{
				{"id": 9, "firstName": "Amina", "clinicRef": "SHF-001"},
			})
		}))
		defer server.Close()

		client := newTestClient(t, server, 0, nil)
		record, err := client.SearchPatientByClinicRef(context.Background(), "SHF-001")
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, int64(9), record.ID)
		assert.Equal(t, "Amina", record.Fields["firstName"])
	})

	t.Run("Empty Result Is Not An Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := newTestClient(t, server, 0, nil)
		record, err := client.SearchPatientByClinicRef(context.Background(), "SHF-404")
		require.NoError(t, err)
		assert.Nil(t, record)
	})
}

func TestRegistryClient_FetchPatientBundle(t *testing.T) {
	t.Run("Envelope Wrapped Bundle Decodes Per Section", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.ResourcePatients+"/9"+constvars.RegistryBundleSuffix, r.URL.Path)
			w.WriteHeader(http.StatusOK)
			w.Write(wrapEnvelope(t, map[string]interface{}{
				constvars.SectionRegistration: map[string]interface{}{"id": 9, "firstName": "Amina"},
				constvars.SectionEarScreening: map[string]interface{}{"id": 21, "leftEarCanal": "Clear"},
			}))
		}))
		defer server.Close()

		client := newTestClient(t, server, 0, nil)
		bundle, err := client.FetchPatientBundle(context.Background(), 9)
		require.NoError(t, err)
		require.Len(t, bundle, 2)
		assert.Equal(t, int64(9), bundle[constvars.SectionRegistration].ID)
		assert.Equal(t, int64(21), bundle[constvars.SectionEarScreening].ID)
		assert.Equal(t, "Clear", bundle[constvars.SectionEarScreening].Fields["leftEarCanal"])
	})
}

func TestRegistryClient_Quota(t *testing.T) {
	t.Run("Over Quota Blocks Before Sending", func(t *testing.T) {
		var hits int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := newTestClient(t, server, 2, &fakeLimiter{})
		for i := 0; i < 2; i++ {
			_, err := client.SearchPatientByClinicRef(context.Background(), "SHF-001")
			require.NoError(t, err)
		}

		_, err := client.SearchPatientByClinicRef(context.Background(), "SHF-001")
		require.Error(t, err)
		assert.Equal(t, 2, hits)
	})

	t.Run("Limiter Outage Fails Open", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := newTestClient(t, server, 2, &fakeLimiter{err: assert.AnError})
		_, err := client.SearchPatientByClinicRef(context.Background(), "SHF-001")
		assert.NoError(t, err)
	})
}
