package application

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/ticketera/ticket-platform/orchestration-service/domain"
	"github.com/ticketera/ticket-platform/shared/models"
	"github.com/ticketera/ticket-platform/shared/saga"
	"go.uber.org/zap"
)

const (
	RegistrationSagaName = "user-registration"

	StepRegisterUser  = "register-user"
	StepNotifyWelcome = "notify-welcome"
)

// RegisterUser runs the registration saga: a critical registration followed
// by a best-effort welcome notification.
type RegisterUser struct {
	users         domain.UserPort
	notifications domain.NotificationPort
	orchestrator  *saga.Orchestrator
	logger        *zap.Logger

	notificationTimeout time.Duration
}

func NewRegisterUser(
	users domain.UserPort,
	notifications domain.NotificationPort,
	orchestrator *saga.Orchestrator,
	logger *zap.Logger,
) *RegisterUser {
	return &RegisterUser{
		users:               users,
		notifications:       notifications,
		orchestrator:        orchestrator,
		logger:              logger.Named("registration"),
		notificationTimeout: defaultNotificationTimeout,
	}
}

func (uc *RegisterUser) Execute(ctx context.Context, req *domain.RegisterUserRequest) (*domain.SagaOutcome, error) {
	if err := req.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid command")
	}

	sagaID := models.GenerateUUID()
	var user *domain.User

	def := &saga.Definition{
		Name: RegistrationSagaName,
		Steps: []saga.Step{
			{
				Name: StepRegisterUser,
				Tag:  saga.TagCritical,
				Execute: func(ctx context.Context) error {
					registered, err := uc.users.RegisterUser(ctx, *req)
					if err != nil {
						return errors.Wrap(err, "Error al procesar el registro")
					}
					user = registered
					return nil
				},
			},
			{
				Name:    StepNotifyWelcome,
				Tag:     saga.TagBestEffort,
				Timeout: uc.notificationTimeout,
				Execute: func(ctx context.Context) error {
					return uc.notifications.SendNotification(ctx, domain.WelcomeNotification(user))
				},
			},
		},
	}

	result, err := uc.orchestrator.Run(ctx, sagaID, def)
	if err != nil {
		return nil, errors.Wrap(err, "failed to run registration saga")
	}

	if !result.Succeeded() {
		return &domain.SagaOutcome{
			SagaID:                       sagaID,
			Result:                       domain.SagaFailed,
			FailureReason:                result.Err().Error(),
			FailureKind:                  classifyFailure(result.Err()),
			RequiresManualReconciliation: result.RequiresManualReconciliation,
		}, nil
	}

	return &domain.SagaOutcome{
		SagaID: sagaID,
		Result: domain.SagaSuccess,
		User:   user,
	}, nil
}
