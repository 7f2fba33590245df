package contracts

import (
	"audicare-service/internal/app/models"
	"context"
)

type UserRepository interface {
	FindUserByUsername(ctx context.Context, username string) (*models.StaffUser, error)
	CreateUser(ctx context.Context, user *models.StaffUser) (string, error)
}
