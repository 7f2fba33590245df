package encounters

import (
	"audicare-service/internal/app/contracts"
	"audicare-service/internal/pkg/constvars"
	"audicare-service/internal/pkg/dto/requests"
	"audicare-service/internal/pkg/exceptions"
	"audicare-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type EncounterController struct {
	EncounterUsecase contracts.EncounterUsecase
	Log              *zap.Logger
}

func NewEncounterController(encounterUsecase contracts.EncounterUsecase, logger *zap.Logger) *EncounterController {
	return &EncounterController{
		EncounterUsecase: encounterUsecase,
		Log:              logger,
	}
}

func (ctrl *EncounterController) OpenWorkflow(w http.ResponseWriter, r *http.Request) {
	request := new(requests.OpenWorkflow)
	if r.ContentLength > 0 {
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
	}

	request.ClinicRef = strings.TrimSpace(strings.ToUpper(request.ClinicRef))

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.EncounterUsecase.OpenWorkflow(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.WorkflowOpenedSuccess, response)
}

func (ctrl *EncounterController) GetWorkflow(w http.ResponseWriter, r *http.Request) {
	workflowID := chi.URLParam(r, "workflowID")

	response, err := ctrl.EncounterUsecase.GetWorkflow(r.Context(), workflowID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkflowStateSuccess, response)
}

func (ctrl *EncounterController) ReassignPatient(w http.ResponseWriter, r *http.Request) {
	workflowID := chi.URLParam(r, "workflowID")

	request := new(requests.LookupPatient)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	request.ClinicRef = strings.TrimSpace(strings.ToUpper(request.ClinicRef))

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.EncounterUsecase.ReassignPatient(ctx, workflowID, request.ClinicRef)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkflowStateSuccess, response)
}

func (ctrl *EncounterController) UpdateSection(w http.ResponseWriter, r *http.Request) {
	workflowID := chi.URLParam(r, "workflowID")
	sectionKey := chi.URLParam(r, "sectionKey")

	request := new(requests.UpdateSection)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.EncounterUsecase.UpdateSection(r.Context(), workflowID, sectionKey, request.Fields)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SectionUpdatedSuccess, response)
}

func (ctrl *EncounterController) SaveSection(w http.ResponseWriter, r *http.Request) {
	workflowID := chi.URLParam(r, "workflowID")
	sectionKey := chi.URLParam(r, "sectionKey")

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.EncounterUsecase.SaveSection(ctx, workflowID, sectionKey)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SectionSavedSuccess, response)
}

func (ctrl *EncounterController) SubmitPhase(w http.ResponseWriter, r *http.Request) {
	workflowID := chi.URLParam(r, "workflowID")
	phaseKey := chi.URLParam(r, "phaseKey")

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	response, err := ctrl.EncounterUsecase.SubmitPhase(ctx, workflowID, phaseKey)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.PhaseSubmittedSuccess
	if !response.AllSucceeded {
		message = constvars.PhaseSubmittedPartially
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}

func (ctrl *EncounterController) CheckGate(w http.ResponseWriter, r *http.Request) {
	workflowID := chi.URLParam(r, "workflowID")
	phaseKey := chi.URLParam(r, "phaseKey")

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.EncounterUsecase.CheckGate(ctx, workflowID, phaseKey)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GateCheckedSuccess, response)
}

func (ctrl *EncounterController) Dirty(w http.ResponseWriter, r *http.Request) {
	workflowID := chi.URLParam(r, "workflowID")

	response, err := ctrl.EncounterUsecase.Dirty(r.Context(), workflowID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DirtyCheckedSuccess, response)
}

func (ctrl *EncounterController) RefreshBaseline(w http.ResponseWriter, r *http.Request) {
	workflowID := chi.URLParam(r, "workflowID")

	err := ctrl.EncounterUsecase.RefreshBaseline(r.Context(), workflowID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BaselineRefreshSuccess, nil)
}

func (ctrl *EncounterController) Hydrate(w http.ResponseWriter, r *http.Request) {
	workflowID := chi.URLParam(r, "workflowID")

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.EncounterUsecase.Hydrate(ctx, workflowID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HydrationSuccess, response)
}

func (ctrl *EncounterController) UploadEarPhoto(w http.ResponseWriter, r *http.Request) {
	workflowID := chi.URLParam(r, "workflowID")

	request := new(requests.UploadEarPhoto)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.EncounterUsecase.AttachEarPhoto(ctx, workflowID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PhotoUploadedSuccess, response)
}
