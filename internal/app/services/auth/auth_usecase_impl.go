package auth

import (
	"audicare-service/internal/app/config"
	"audicare-service/internal/app/contracts"
	"audicare-service/internal/app/models"
	"audicare-service/internal/pkg/constvars"
	"audicare-service/internal/pkg/dto/requests"
	"audicare-service/internal/pkg/dto/responses"
	"audicare-service/internal/pkg/exceptions"
	"audicare-service/internal/pkg/utils"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository:  userRepository,
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) RegisterStaff(ctx context.Context, request *requests.RegisterStaff) (*responses.StaffRegistered, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterStaff called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.UserRepository.FindUserByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(fmt.Errorf("username %s taken", request.Username))
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	user := &models.StaffUser{
		Username:   request.Username,
		Email:      request.Email,
		Password:   hashedPassword,
		Role:       request.Role,
		ClinicSite: request.ClinicSite,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.RegisterStaff succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.StaffRegistered{
		UserID:   userID,
		Username: user.Username,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindUserByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidUsernameOrPassword(fmt.Errorf("user not found"))
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(fmt.Errorf("password mismatch"))
	}

	sessionTTL := time.Duration(uc.InternalConfig.JWT.LoginSessionExpiredTimeInHours) * time.Hour
	sessionID := utils.GenerateSessionID()

	token, err := utils.GenerateJWT(sessionID, uc.InternalConfig.JWT.Secret, sessionTTL)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		SessionID: sessionID,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		Token:     token,
		ExpiresAt: time.Now().Add(sessionTTL),
	}

	err = uc.RedisRepository.Set(ctx, constvars.RedisSessionKeyPrefix+sessionID, session, sessionTTL)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.Login{
		Token:     token,
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return uc.RedisRepository.Delete(ctx, constvars.RedisSessionKeyPrefix+sessionID)
}

func (uc *authUsecase) ResolveSession(ctx context.Context, token string) (*responses.SessionData, error) {
	sessionID, err := utils.ParseJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	sessionJSON, err := uc.RedisRepository.Get(ctx, constvars.RedisSessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if sessionJSON == "" {
		return nil, exceptions.ErrTokenInvalidOrExpired(fmt.Errorf("session %s not found", sessionID))
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	return &responses.SessionData{
		SessionID: session.SessionID,
		UserID:    session.UserID,
		Username:  session.Username,
		Role:      session.Role,
		Token:     session.Token,
	}, nil
}
