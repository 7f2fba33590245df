package encounters

import (
	"audicare-service/internal/app/contracts"
	"audicare-service/internal/app/models"
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type fakeRegistry struct {
	mu sync.Mutex

	nextID      int64
	created     map[string][]map[string]interface{}
	updated     map[string][]int64
	createErr   map[string]error
	updateErr   map[string]error
	sections    map[string]*contracts.RegistryRecord
	sectionErr  error
	bundle      map[string]*contracts.RegistryRecord
	bundleErr   error
	searchHits  map[string]*contracts.RegistryRecord
	searchErr   error
	createCalls int
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		nextID:     40,
		created:    make(map[string][]map[string]interface{}),
		updated:    make(map[string][]int64),
		createErr:  make(map[string]error),
		updateErr:  make(map[string]error),
		sections:   make(map[string]*contracts.RegistryRecord),
		searchHits: make(map[string]*contracts.RegistryRecord),
	}
}

func (f *fakeRegistry) CreateRecord(_ context.Context, resourcePath string, payload map[string]interface{}) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if err := f.createErr[resourcePath]; err != nil {
		return 0, err
	}
	f.nextID++
	f.created[resourcePath] = append(f.created[resourcePath], payload)
	return f.nextID, nil
}

func (f *fakeRegistry) UpdateRecord(_ context.Context, resourcePath string, recordID int64, _ map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.updateErr[resourcePath]; err != nil {
		return err
	}
	f.updated[resourcePath] = append(f.updated[resourcePath], recordID)
	return nil
}

func (f *fakeRegistry) SearchPatientByClinicRef(_ context.Context, clinicRef string) (*contracts.RegistryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchHits[clinicRef], nil
}

func (f *fakeRegistry) FindSectionByPatient(_ context.Context, resourcePath string, _ int64) (*contracts.RegistryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sectionErr != nil {
		return nil, f.sectionErr
	}
	return f.sections[resourcePath], nil
}

func (f *fakeRegistry) FetchPatientBundle(_ context.Context, _ int64) (map[string]*contracts.RegistryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.bundleErr != nil {
		return nil, f.bundleErr
	}
	return f.bundle, nil
}

type fakePatients struct {
	identities map[string]*models.PatientIdentity
	err        error
}

func (f *fakePatients) LookupByClinicRef(_ context.Context, clinicRef string) (*models.PatientIdentity, error) {
	if f.err != nil {
		return nil, f.err
	}
	if identity, ok := f.identities[clinicRef]; ok {
		return identity, nil
	}
	return &models.PatientIdentity{ClinicRef: clinicRef, Source: models.IdentitySourceSearched}, nil
}

type fakePhotos struct {
	lastObjectName string
}

func (f *fakePhotos) UploadEarPhoto(_ context.Context, objectName string, _ []byte, _ string) (string, error) {
	f.lastObjectName = objectName
	return "https://storage.local/" + objectName, nil
}

type fakeReminders struct {
	mu        sync.Mutex
	published []*models.AftercareReminder
}

func (f *fakeReminders) PublishAftercareReminder(_ context.Context, reminder *models.AftercareReminder) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, reminder)
	return nil
}

type fakeCache struct {
	mu    sync.Mutex
	store map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string]string)}
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = string(raw)
	return nil
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.store[key], nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.store, key)
	return nil
}

func (f *fakeCache) IncrementWithTTL(_ context.Context, _ string, _ time.Duration) (int64, error) {
	return 0, nil
}
