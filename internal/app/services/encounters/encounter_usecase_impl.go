package encounters

import (
	"audicare-service/internal/app/config"
	"audicare-service/internal/app/contracts"
	"audicare-service/internal/app/models"
	"audicare-service/internal/app/services/patients"
	"audicare-service/internal/pkg/constvars"
	"audicare-service/internal/pkg/dto/requests"
	"audicare-service/internal/pkg/dto/responses"
	"audicare-service/internal/pkg/exceptions"
	"audicare-service/internal/pkg/formstate"
	"audicare-service/internal/pkg/utils"
	"context"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	encounterUsecaseInstance contracts.EncounterUsecase
	onceEncounterUsecase     sync.Once
)

type encounterUsecase struct {
	Manager        *workflowManager
	Registry       contracts.RegistryClient
	Gate           *PhaseGate
	Hydrator       *Hydrator
	Patients       contracts.PatientUsecase
	Photos         contracts.PhotoStorage
	Reminders      contracts.ReminderPublisher
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewEncounterUsecase(
	registryClient contracts.RegistryClient,
	hydrator *Hydrator,
	patientUsecase contracts.PatientUsecase,
	photoStorage contracts.PhotoStorage,
	reminderPublisher contracts.ReminderPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.EncounterUsecase {
	onceEncounterUsecase.Do(func() {
		encounterUsecaseInstance = &encounterUsecase{
			Manager:        newWorkflowManager(),
			Registry:       registryClient,
			Gate:           NewPhaseGate(registryClient, logger),
			Hydrator:       hydrator,
			Patients:       patientUsecase,
			Photos:         photoStorage,
			Reminders:      reminderPublisher,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return encounterUsecaseInstance
}

func (uc *encounterUsecase) OpenWorkflow(ctx context.Context, request *requests.OpenWorkflow) (*responses.WorkflowState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("encounterUsecase.OpenWorkflow called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicRefKey, request.ClinicRef),
	)

	workflow := NewWorkflow(utils.GenerateWorkflowID())

	if request.ClinicRef != "" {
		identity, err := uc.Patients.LookupByClinicRef(ctx, request.ClinicRef)
		if err != nil {
			return nil, err
		}
		workflow.Lock()
		workflow.RebindPatient(identity)
		workflow.Unlock()
	}

	uc.Manager.Put(workflow)

	if workflow.Identity.Resolved() {
		// A hydration problem must not keep the clinic from starting the
		// encounter; the workflow opens empty and can hydrate later.
		if _, err := uc.Hydrate(ctx, workflow.ID); err != nil {
			uc.Log.Warn("encounterUsecase.OpenWorkflow hydration skipped",
				zap.String(constvars.LoggingWorkflowIDKey, workflow.ID),
				zap.Error(err),
			)
		}
	}

	workflow.Lock()
	defer workflow.Unlock()
	return uc.buildWorkflowState(workflow), nil
}

func (uc *encounterUsecase) GetWorkflow(ctx context.Context, workflowID string) (*responses.WorkflowState, error) {
	workflow, err := uc.workflow(workflowID)
	if err != nil {
		return nil, err
	}
	workflow.Lock()
	defer workflow.Unlock()
	return uc.buildWorkflowState(workflow), nil
}

func (uc *encounterUsecase) ReassignPatient(ctx context.Context, workflowID, clinicRef string) (*responses.WorkflowState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("encounterUsecase.ReassignPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkflowIDKey, workflowID),
		zap.String(constvars.LoggingClinicRefKey, clinicRef),
	)

	workflow, err := uc.workflow(workflowID)
	if err != nil {
		return nil, err
	}

	identity, err := uc.Patients.LookupByClinicRef(ctx, clinicRef)
	if err != nil {
		return nil, err
	}

	workflow.Lock()
	samePatient := workflow.Identity.Resolved() && identity.Resolved() &&
		workflow.Identity.PatientID == identity.PatientID
	if !samePatient {
		workflow.RebindPatient(identity)
	}
	workflow.Unlock()

	if !samePatient && identity.Resolved() {
		if _, err := uc.Hydrate(ctx, workflowID); err != nil {
			uc.Log.Warn("encounterUsecase.ReassignPatient hydration skipped",
				zap.String(constvars.LoggingWorkflowIDKey, workflowID),
				zap.Error(err),
			)
		}
	}

	workflow.Lock()
	defer workflow.Unlock()
	return uc.buildWorkflowState(workflow), nil
}

func (uc *encounterUsecase) UpdateSection(ctx context.Context, workflowID, sectionKey string, fields map[string]interface{}) (*responses.SectionState, error) {
	workflow, err := uc.workflow(workflowID)
	if err != nil {
		return nil, err
	}
	if _, ok := constvars.SectionPhase[sectionKey]; !ok {
		return nil, exceptions.ErrUnknownSection(sectionKey)
	}

	normalized := normalizeSectionFields(sectionKey, fields)

	workflow.Lock()
	defer workflow.Unlock()

	section := workflow.Sections[sectionKey]
	for name, value := range normalized {
		section.Fields[name] = value
	}

	// A patient identifier keyed into the registration form counts as a
	// form-value identity candidate, the weakest of the three sources. It can
	// only claim a workflow whose identity is still unresolved; a rebind to a
	// different resolved patient goes through ReassignPatient.
	if sectionKey == constvars.SectionRegistration && !workflow.Identity.Resolved() {
		if formPatientID, ok := toInt64(section.Fields[constvars.RegistryPayloadPatientIDKey]); ok && formPatientID > 0 {
			candidate := &models.PatientIdentity{
				PatientID: formPatientID,
				ClinicRef: stringField(section.Fields, "clinicRef"),
				Source:    models.IdentitySourceFormValue,
			}
			if resolved := patients.ResolveIdentity(nil, workflow.Identity, candidate); resolved != nil {
				workflow.Identity = resolved
			}
		}
	}

	return buildSectionState(section), nil
}

func (uc *encounterUsecase) SaveSection(ctx context.Context, workflowID, sectionKey string) (*responses.SectionState, error) {
	workflow, err := uc.workflow(workflowID)
	if err != nil {
		return nil, err
	}
	if _, ok := constvars.SectionPhase[sectionKey]; !ok {
		return nil, exceptions.ErrUnknownSection(sectionKey)
	}

	uc.persistSection(ctx, workflow, sectionKey)

	workflow.Lock()
	defer workflow.Unlock()
	return buildSectionState(workflow.Sections[sectionKey]), nil
}

func (uc *encounterUsecase) SubmitPhase(ctx context.Context, workflowID, phaseKey string) (*responses.SubmitOutcome, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("encounterUsecase.SubmitPhase called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkflowIDKey, workflowID),
		zap.String(constvars.LoggingPhaseKey, phaseKey),
	)

	workflow, err := uc.workflow(workflowID)
	if err != nil {
		return nil, err
	}
	sectionKeys, ok := constvars.PhaseSections[phaseKey]
	if !ok {
		return nil, exceptions.ErrUnknownPhase(phaseKey)
	}

	workflow.Lock()
	identity := workflow.Identity
	ledger := workflow.Ledger
	workflow.Unlock()

	gate := uc.Gate.Evaluate(ctx, phaseKey, identity, ledger)
	switch gate.Result {
	case responses.GateBlocked:
		return nil, exceptions.ErrPhaseBlocked(phaseKey, constvars.PhasePrerequisiteSection[phaseKey])
	case responses.GatePending:
		return nil, exceptions.ErrPhasePending(phaseKey)
	}

	outcomes := make([]responses.SectionOutcome, len(sectionKeys))
	remaining := sectionKeys

	// The registration record supplies the patient identifier its sibling
	// sections reference, so it must persist before they start.
	if sectionKeys[0] == constvars.SectionRegistration {
		outcomes[0] = uc.persistSection(ctx, workflow, sectionKeys[0])
		remaining = sectionKeys[1:]
	}

	var wg sync.WaitGroup
	offset := len(sectionKeys) - len(remaining)
	for i, sectionKey := range remaining {
		wg.Add(1)
		go func(slot int, key string) {
			defer wg.Done()
			outcomes[slot] = uc.persistSection(ctx, workflow, key)
		}(offset+i, sectionKey)
	}
	wg.Wait()

	allSucceeded := true
	for _, outcome := range outcomes {
		if !outcome.Success {
			allSucceeded = false
			break
		}
	}

	if phaseKey == constvars.PhaseFitting && allSucceeded {
		uc.publishAftercareReminder(ctx, workflow)
	}

	uc.Log.Info("encounterUsecase.SubmitPhase finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkflowIDKey, workflowID),
		zap.String(constvars.LoggingPhaseKey, phaseKey),
		zap.Bool(constvars.LoggingSuccessKey, allSucceeded),
	)
	return &responses.SubmitOutcome{
		Phase:        phaseKey,
		AllSucceeded: allSucceeded,
		Sections:     outcomes,
	}, nil
}

func (uc *encounterUsecase) CheckGate(ctx context.Context, workflowID, phaseKey string) (*responses.GateStatus, error) {
	workflow, err := uc.workflow(workflowID)
	if err != nil {
		return nil, err
	}
	if _, ok := constvars.PhaseSections[phaseKey]; !ok {
		return nil, exceptions.ErrUnknownPhase(phaseKey)
	}

	workflow.Lock()
	identity := workflow.Identity
	ledger := workflow.Ledger
	workflow.Unlock()

	return uc.Gate.Evaluate(ctx, phaseKey, identity, ledger), nil
}

func (uc *encounterUsecase) Dirty(ctx context.Context, workflowID string) (*responses.DirtyState, error) {
	workflow, err := uc.workflow(workflowID)
	if err != nil {
		return nil, err
	}
	workflow.Lock()
	defer workflow.Unlock()
	return &responses.DirtyState{Dirty: workflow.Dirty()}, nil
}

func (uc *encounterUsecase) RefreshBaseline(ctx context.Context, workflowID string) error {
	workflow, err := uc.workflow(workflowID)
	if err != nil {
		return err
	}
	workflow.Lock()
	defer workflow.Unlock()
	workflow.RefreshBaseline()
	return nil
}

func (uc *encounterUsecase) Hydrate(ctx context.Context, workflowID string) (*responses.HydrationResult, error) {
	workflow, err := uc.workflow(workflowID)
	if err != nil {
		return nil, err
	}

	workflow.Lock()
	identity := workflow.Identity
	generation := workflow.Generation()
	workflow.Unlock()

	if !identity.Resolved() {
		return nil, exceptions.ErrPatientIdentityMissing()
	}

	bundle, err := uc.Hydrator.Fetch(ctx, identity.PatientID)
	if err != nil {
		return nil, err
	}

	workflow.Lock()
	defer workflow.Unlock()

	if workflow.Generation() != generation {
		return nil, exceptions.WrapWithoutError(
			constvars.StatusConflict,
			constvars.ErrClientCannotProcessRequest,
			"hydration result discarded after patient change",
		)
	}

	sectionIDs := make(map[string]int64, len(bundle))
	completionFlags := make(map[string]bool, len(constvars.SectionPhase))
	allComplete := true
	for sectionKey := range constvars.SectionPhase {
		record, present := bundle[sectionKey]
		completionFlags[sectionKey] = present
		if !present {
			allComplete = false
			continue
		}
		section := workflow.Sections[sectionKey]
		section.Fields = normalizeSectionFieldsWithFallback(sectionKey, record.Fields, section.Fields)
		backendID := record.ID
		section.BackendID = &backendID
		section.SaveState = models.SaveStateSaved
		section.LastError = ""
		section.Complete = true
		sectionIDs[sectionKey] = record.ID
	}
	workflow.Ledger.Seed(sectionIDs)
	workflow.RefreshBaseline()

	return &responses.HydrationResult{
		PatientID:       identity.PatientID,
		CompletionFlags: completionFlags,
		AllComplete:     allComplete,
		SectionIDs:      sectionIDs,
	}, nil
}

func (uc *encounterUsecase) AttachEarPhoto(ctx context.Context, workflowID string, request *requests.UploadEarPhoto) (*responses.PhotoUpload, error) {
	workflow, err := uc.workflow(workflowID)
	if err != nil {
		return nil, err
	}

	imageData, err := base64.StdEncoding.DecodeString(request.Image)
	if err != nil {
		return nil, exceptions.ErrImageValidation(err)
	}
	maxMB := uc.InternalConfig.Minio.EarPhotoMaxUploadSizeMB
	if int64(len(imageData)) > maxMB<<20 {
		return nil, exceptions.ErrImageTooLarge(maxMB)
	}

	extension := ".jpg"
	if request.ContentType == constvars.MIMEImagePNG {
		extension = ".png"
	}

	workflow.Lock()
	ownerRef := workflow.ID
	if workflow.Identity != nil && workflow.Identity.ClinicRef != "" {
		ownerRef = workflow.Identity.ClinicRef
	}
	workflow.Unlock()

	objectName := utils.GeneratePhotoObjectName(ownerRef, request.Side, extension)
	photoURL, err := uc.Photos.UploadEarPhoto(ctx, objectName, imageData, request.ContentType)
	if err != nil {
		return nil, err
	}

	workflow.Lock()
	workflow.Sections[constvars.SectionEarScreening].Fields[request.Side+"EarPhoto"] = photoURL
	workflow.Unlock()

	return &responses.PhotoUpload{
		ObjectName: objectName,
		URL:        photoURL,
	}, nil
}

// persistSection runs one save attempt for a section, honoring the ledger's
// create-or-update plan. Results of requests that finish after the workflow
// switched patients are dropped without touching state.
func (uc *encounterUsecase) persistSection(ctx context.Context, workflow *Workflow, sectionKey string) responses.SectionOutcome {
	workflow.Lock()
	generation := workflow.Generation()
	identity := workflow.Identity
	section := workflow.Sections[sectionKey]
	section.SaveState = models.SaveStateSaving
	section.LastError = ""
	plan := workflow.Ledger.Plan(sectionKey)
	payload := map[string]interface{}(formstate.CloneFields(section.Fields))
	workflow.Unlock()

	if sectionKey != constvars.SectionRegistration {
		if !identity.Resolved() {
			return uc.failSection(workflow, generation, sectionKey, exceptions.ErrPatientIdentityMissing())
		}
		payload[constvars.RegistryPayloadPatientIDKey] = identity.PatientID
		if constvars.SectionNeedsRegistrationRef[sectionKey] {
			payload[constvars.RegistryPayloadRegistrationIDKey] = identity.PatientID
		}
	} else if identity != nil && identity.ClinicRef != "" {
		payload["clinicRef"] = identity.ClinicRef
	}

	resourcePath := constvars.SectionResourcePaths[sectionKey]

	var backendID int64
	var err error
	if plan.Mode == PersistCreate {
		backendID, err = uc.Registry.CreateRecord(ctx, resourcePath, payload)
	} else {
		backendID = plan.BackendID
		err = uc.Registry.UpdateRecord(ctx, resourcePath, plan.BackendID, payload)
	}
	if err != nil {
		return uc.failSection(workflow, generation, sectionKey, err)
	}

	workflow.Lock()
	defer workflow.Unlock()
	if workflow.Generation() != generation {
		uc.Log.Info("encounterUsecase.persistSection result discarded after patient change",
			zap.String(constvars.LoggingWorkflowIDKey, workflow.ID),
			zap.String(constvars.LoggingSectionKey, sectionKey),
		)
		return responses.SectionOutcome{
			SectionKey: sectionKey,
			Success:    false,
			Error:      "discarded: workflow switched patients during save",
		}
	}

	section = workflow.Sections[sectionKey]
	if plan.Mode == PersistCreate {
		workflow.Ledger.Commit(sectionKey, backendID)
	}
	section.BackendID = &backendID
	section.SaveState = models.SaveStateSaved
	section.LastError = ""
	section.Complete = true
	workflow.RefreshSectionBaseline(sectionKey)

	// Creating the patient record resolves the strongest identity source.
	if sectionKey == constvars.SectionRegistration && plan.Mode == PersistCreate {
		clinicRef := stringField(section.Fields, "clinicRef")
		if clinicRef == "" && identity != nil {
			clinicRef = identity.ClinicRef
		}
		registered := &models.PatientIdentity{
			PatientID: backendID,
			ClinicRef: clinicRef,
			Source:    models.IdentitySourceRegistered,
		}
		workflow.Identity = patients.ResolveIdentity(registered, nil, workflow.Identity)
	}

	if workflow.Identity.Resolved() {
		uc.Hydrator.Invalidate(ctx, workflow.Identity.PatientID)
	}

	return responses.SectionOutcome{
		SectionKey: sectionKey,
		Success:    true,
		BackendID:  section.BackendID,
	}
}

func (uc *encounterUsecase) failSection(workflow *Workflow, generation uint64, sectionKey string, cause error) responses.SectionOutcome {
	message := contracts.FailureMessage(cause)

	workflow.Lock()
	defer workflow.Unlock()
	if workflow.Generation() == generation {
		section := workflow.Sections[sectionKey]
		section.SaveState = models.SaveStateFailed
		section.LastError = message
	}

	uc.Log.Warn("encounterUsecase.persistSection failed",
		zap.String(constvars.LoggingWorkflowIDKey, workflow.ID),
		zap.String(constvars.LoggingSectionKey, sectionKey),
		zap.Error(cause),
	)
	return responses.SectionOutcome{
		SectionKey: sectionKey,
		Success:    false,
		Error:      message,
	}
}

func (uc *encounterUsecase) publishAftercareReminder(ctx context.Context, workflow *Workflow) {
	if uc.Reminders == nil {
		return
	}

	workflow.Lock()
	identity := workflow.Identity
	fittingID, _ := workflow.Ledger.Peek(constvars.SectionDeviceFitting)
	workflow.Unlock()

	if !identity.Resolved() {
		return
	}

	dueDate := time.Now().AddDate(0, 0, uc.InternalConfig.Reminder.DueInDays).Format("2006-01-02")
	reminder := &models.AftercareReminder{
		PatientID: identity.PatientID,
		ClinicRef: identity.ClinicRef,
		FittingID: fittingID,
		DueDate:   dueDate,
	}
	if err := uc.Reminders.PublishAftercareReminder(ctx, reminder); err != nil {
		// The fitting itself persisted; a reminder that failed to enqueue is
		// an operational problem, not a save failure.
		uc.Log.Error("encounterUsecase.publishAftercareReminder failed",
			zap.Int64(constvars.LoggingPatientIDKey, identity.PatientID),
			zap.Error(err),
		)
	}
}

func (uc *encounterUsecase) workflow(workflowID string) (*Workflow, error) {
	workflow, ok := uc.Manager.Get(workflowID)
	if !ok {
		return nil, exceptions.ErrWorkflowNotFound(workflowID)
	}
	return workflow, nil
}

// buildWorkflowState renders the full workflow snapshot. Callers hold the
// workflow lock. Phase gates here are evaluated locally from the ledger; the
// CheckGate operation is the authoritative, registry-backed check.
func (uc *encounterUsecase) buildWorkflowState(workflow *Workflow) *responses.WorkflowState {
	state := &responses.WorkflowState{
		WorkflowID: workflow.ID,
		Dirty:      workflow.Dirty(),
	}
	if workflow.Identity != nil {
		state.PatientID = workflow.Identity.PatientID
		state.ClinicRef = workflow.Identity.ClinicRef
		state.PatientFound = workflow.Identity.Resolved()
	}

	for _, phaseKey := range constvars.PhaseOrder {
		sectionKeys := constvars.PhaseSections[phaseKey]
		phase := responses.PhaseState{
			Phase:      phaseKey,
			TotalCount: len(sectionKeys),
			Gate:       uc.localGate(workflow, phaseKey),
		}
		for _, sectionKey := range sectionKeys {
			section := workflow.Sections[sectionKey]
			if section.Complete {
				phase.CompletedCount++
			}
			state.Sections = append(state.Sections, *buildSectionState(section))
		}
		state.Phases = append(state.Phases, phase)
	}
	return state
}

func (uc *encounterUsecase) localGate(workflow *Workflow, phaseKey string) responses.GateStatus {
	prerequisite, gated := constvars.PhasePrerequisiteSection[phaseKey]
	if !gated {
		return responses.GateStatus{Phase: phaseKey, Result: responses.GateAllowed}
	}
	if _, ok := workflow.Ledger.Peek(prerequisite); ok {
		return responses.GateStatus{Phase: phaseKey, Result: responses.GateAllowed}
	}
	if workflow.Identity.Resolved() {
		// The registry has not been consulted here; the authoritative check
		// runs through CheckGate.
		return responses.GateStatus{
			Phase:  phaseKey,
			Result: responses.GatePending,
			Reason: fmt.Sprintf("%s prerequisite not verified yet", prerequisite),
		}
	}
	return responses.GateStatus{
		Phase:  phaseKey,
		Result: responses.GateBlocked,
		Reason: fmt.Sprintf("no %s record exists yet", prerequisite),
	}
}

func buildSectionState(section *models.Section) *responses.SectionState {
	return &responses.SectionState{
		SectionKey: section.Key,
		Phase:      constvars.SectionPhase[section.Key],
		BackendID:  section.BackendID,
		Fields:     formstate.CloneFields(section.Fields),
		SaveState:  string(section.SaveState),
		LastError:  section.LastError,
		Complete:   section.Complete,
	}
}

func toInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	}
	return 0, false
}

func stringField(fields formstate.Fields, name string) string {
	if s, ok := fields[name].(string); ok {
		return s
	}
	return ""
}
