package patients

import (
	"audicare-service/internal/app/contracts"
	"audicare-service/internal/pkg/constvars"
	"audicare-service/internal/pkg/dto/requests"
	"audicare-service/internal/pkg/dto/responses"
	"audicare-service/internal/pkg/exceptions"
	"audicare-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PatientController struct {
	PatientUsecase contracts.PatientUsecase
	Log            *zap.Logger
}

func NewPatientController(patientUsecase contracts.PatientUsecase, logger *zap.Logger) *PatientController {
	return &PatientController{
		PatientUsecase: patientUsecase,
		Log:            logger,
	}
}

func (ctrl *PatientController) LookupPatient(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	identity, err := ctrl.PatientUsecase.LookupByClinicRef(ctx, request.ClinicRef)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := &responses.PatientLookup{
		Found:     identity.Resolved(),
		PatientID: identity.PatientID,
		ClinicRef: identity.ClinicRef,
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientLookupSuccess, response)
}
