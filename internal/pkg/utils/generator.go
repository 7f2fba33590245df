package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateWorkflowID() string {
	return uuid.NewString()
}

func GeneratePhotoObjectName(clinicRef, side, extension string) string {
	return fmt.Sprintf("otoscopy/%s/%s-%d-%s%s", clinicRef, side, time.Now().Unix(), uuid.NewString()[:8], extension)
}
