package contracts

import (
	"audicare-service/internal/app/models"
	"context"
)

type ReminderPublisher interface {
	PublishAftercareReminder(ctx context.Context, reminder *models.AftercareReminder) error
}
