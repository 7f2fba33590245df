package encounters

import (
	"audicare-service/internal/app/contracts"
	"audicare-service/internal/pkg/constvars"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHydrator_Fetch(t *testing.T) {
	t.Run("Bundle Served And Cached", func(t *testing.T) {
		registry := newFakeRegistry()
		registry.bundle = map[string]*contracts.RegistryRecord{
			constvars.SectionRegistration: {ID: 9, Fields: map[string]interface{}{"firstName": "Amina"}},
		}
		cache := newFakeCache()
		hydrator := NewHydrator(registry, cache, time.Minute, zap.NewNop())

		bundle, err := hydrator.Fetch(context.Background(), 9)
		require.NoError(t, err)
		require.Len(t, bundle, 1)
		assert.Equal(t, int64(9), bundle[constvars.SectionRegistration].ID)

		// Second fetch is served from cache even if the registry dies.
		registry.bundleErr = assert.AnError
		registry.sectionErr = assert.AnError
		cached, err := hydrator.Fetch(context.Background(), 9)
		require.NoError(t, err)
		assert.Equal(t, int64(9), cached[constvars.SectionRegistration].ID)
	})

	t.Run("Bundle Failure Falls Back To Per Section Lookups", func(t *testing.T) {
		registry := newFakeRegistry()
		registry.bundleErr = assert.AnError
		registry.sections[constvars.ResourcePatients] = &contracts.RegistryRecord{ID: 9}
		registry.sections[constvars.ResourceEarScreenings] = &contracts.RegistryRecord{ID: 21}

		hydrator := NewHydrator(registry, nil, 0, zap.NewNop())
		bundle, err := hydrator.Fetch(context.Background(), 9)
		require.NoError(t, err)
		assert.Len(t, bundle, 2)
		assert.Equal(t, int64(21), bundle[constvars.SectionEarScreening].ID)
	})

	t.Run("Total Outage Surfaces The Bundle Error", func(t *testing.T) {
		registry := newFakeRegistry()
		registry.bundleErr = assert.AnError
		registry.sectionErr = assert.AnError

		hydrator := NewHydrator(registry, nil, 0, zap.NewNop())
		_, err := hydrator.Fetch(context.Background(), 9)
		assert.Error(t, err)
	})

	t.Run("Invalidate Drops The Cached Bundle", func(t *testing.T) {
		registry := newFakeRegistry()
		registry.bundle = map[string]*contracts.RegistryRecord{
			constvars.SectionRegistration: {ID: 9},
		}
		cache := newFakeCache()
		hydrator := NewHydrator(registry, cache, time.Minute, zap.NewNop())

		_, err := hydrator.Fetch(context.Background(), 9)
		require.NoError(t, err)

		hydrator.Invalidate(context.Background(), 9)
		registry.bundleErr = assert.AnError
		registry.sectionErr = assert.AnError
		_, err = hydrator.Fetch(context.Background(), 9)
		assert.Error(t, err)
	})
}
