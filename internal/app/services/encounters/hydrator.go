package encounters

import (
	"audicare-service/internal/app/contracts"
	"audicare-service/internal/pkg/constvars"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Hydrator recovers a patient's persisted section records from the registry
// so a fresh workflow resumes where the previous session stopped. Bundles
// are cached briefly in redis to spare the registry during busy clinic
// mornings when several tablets hydrate the same patients.
type Hydrator struct {
	Registry contracts.RegistryClient
	Cache    contracts.RedisRepository
	CacheTTL time.Duration
	Log      *zap.Logger
}

func NewHydrator(registry contracts.RegistryClient, cache contracts.RedisRepository, cacheTTL time.Duration, logger *zap.Logger) *Hydrator {
	return &Hydrator{
		Registry: registry,
		Cache:    cache,
		CacheTTL: cacheTTL,
		Log:      logger,
	}
}

// Fetch returns every persisted section record for the patient, keyed by
// section key. When the bundle endpoint is down it falls back to one lookup
// per section, so a degraded registry still hydrates whatever it can serve.
func (h *Hydrator) Fetch(ctx context.Context, patientID int64) (map[string]*contracts.RegistryRecord, error) {
	cacheKey := fmt.Sprintf("%s%d", constvars.RedisHydrationKeyPrefix, patientID)

	if cached := h.fromCache(ctx, cacheKey); cached != nil {
		h.Log.Info("hydrator.Fetch served from cache",
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
		)
		return cached, nil
	}

	bundle, err := h.Registry.FetchPatientBundle(ctx, patientID)
	if err != nil {
		h.Log.Warn("hydrator.Fetch bundle endpoint failed, falling back to per-section lookups",
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		bundle, err = h.fetchSectionBySection(ctx, patientID, err)
		if err != nil {
			return nil, err
		}
	}

	if h.Cache != nil && h.CacheTTL > 0 {
		if cacheErr := h.Cache.Set(ctx, cacheKey, bundle, h.CacheTTL); cacheErr != nil {
			h.Log.Warn("hydrator.Fetch cache write failed", zap.Error(cacheErr))
		}
	}
	return bundle, nil
}

// Invalidate drops the cached bundle, used after a save changes what the
// registry holds.
func (h *Hydrator) Invalidate(ctx context.Context, patientID int64) {
	if h.Cache == nil {
		return
	}
	cacheKey := fmt.Sprintf("%s%d", constvars.RedisHydrationKeyPrefix, patientID)
	if err := h.Cache.Delete(ctx, cacheKey); err != nil {
		h.Log.Warn("hydrator.Invalidate failed", zap.Error(err))
	}
}

func (h *Hydrator) fromCache(ctx context.Context, cacheKey string) map[string]*contracts.RegistryRecord {
	if h.Cache == nil {
		return nil
	}
	cachedJSON, err := h.Cache.Get(ctx, cacheKey)
	if err != nil || cachedJSON == "" {
		return nil
	}
	var bundle map[string]*contracts.RegistryRecord
	if err := json.Unmarshal([]byte(cachedJSON), &bundle); err != nil {
		h.Log.Warn("hydrator.fromCache corrupt cache entry", zap.Error(err))
		return nil
	}
	return bundle
}

// fetchSectionBySection is the narrow fallback path. Sections the registry
// cannot serve are skipped; only a total failure surfaces the original
// bundle error.
func (h *Hydrator) fetchSectionBySection(ctx context.Context, patientID int64, bundleErr error) (map[string]*contracts.RegistryRecord, error) {
	bundle := make(map[string]*contracts.RegistryRecord)
	anySucceeded := false
	for sectionKey, resourcePath := range constvars.SectionResourcePaths {
		record, err := h.Registry.FindSectionByPatient(ctx, resourcePath, patientID)
		if err != nil {
			h.Log.Warn("hydrator.fetchSectionBySection lookup failed",
				zap.String(constvars.LoggingSectionKey, sectionKey),
				zap.Error(err),
			)
			continue
		}
		anySucceeded = true
		if record != nil {
			bundle[sectionKey] = record
		}
	}
	if !anySucceeded {
		return nil, bundleErr
	}
	return bundle, nil
}
