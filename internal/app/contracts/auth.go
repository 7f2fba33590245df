package contracts

import (
	"audicare-service/internal/pkg/dto/requests"
	"audicare-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	RegisterStaff(ctx context.Context, request *requests.RegisterStaff) (*responses.StaffRegistered, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
	ResolveSession(ctx context.Context, token string) (*responses.SessionData, error)
}
