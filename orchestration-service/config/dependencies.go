package config

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ticketera/ticket-platform/orchestration-service/application"
	"github.com/ticketera/ticket-platform/orchestration-service/handlers"
	"github.com/ticketera/ticket-platform/orchestration-service/infrastructure"
	sharedinfra "github.com/ticketera/ticket-platform/shared/infrastructure"
	"github.com/ticketera/ticket-platform/shared/logging"
	"github.com/ticketera/ticket-platform/shared/saga"
	"github.com/ticketera/ticket-platform/shared/telemetry"
)

type Dependencies struct {
	Logger *zap.Logger

	// Database
	DB *sqlx.DB

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()

	// Stores
	AuditStore               *sharedinfra.PostgresAuditStore
	ReconciliationRepository *infrastructure.PostgresReconciliationRepository

	// Collaborators
	Inventory     *infrastructure.InventoryClient
	Payments      *infrastructure.PaymentClient
	Ticketing     *infrastructure.TicketingClient
	Users         *infrastructure.UserClient
	Notifications *infrastructure.EventNotificationSender

	// Saga engine
	Orchestrator *saga.Orchestrator

	// Use Cases
	PurchaseTicket           *application.PurchaseTicket
	RegisterUser             *application.RegisterUser
	GetUserTickets           *application.GetUserTickets
	GetSagaAuditTrail        *application.GetSagaAuditTrail
	RecordReconciliationCase *application.RecordReconciliationCase
	ListReconciliationCases  *application.ListReconciliationCases

	// HTTP Handlers
	OrchestrationHandlers *handlers.OrchestrationHandlers

	// Event Handlers
	EventHandlers *sharedinfra.EventRouter

	// Infrastructure
	EventPublisher  *sharedinfra.SNSEventPublisher
	EventSubscriber *sharedinfra.SQSEventSubscriber
}

func BuildDependencies(ctx context.Context, cfg *Config) (deps *Dependencies, err error) {
	deps = &Dependencies{}
	defer func() {
		if err != nil {
			err = multierr.Append(err, deps.Close())
			deps = nil
		}
	}()

	logger, err := logging.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		return deps, errors.Wrap(err, "failed to create logger")
	}
	deps.Logger = logger

	if cfg.Telemetry.Enabled {
		tel, shutdown, err := telemetry.InitTelemetry(ctx, telemetry.OrchestrationServiceConfig.
			WithServiceName(cfg.ServiceName).
			WithEnvironment(cfg.Env).
			WithOTLPEndpoint(cfg.Telemetry.OTLPEndpoint))
		if err != nil {
			return deps, errors.Wrap(err, "failed to initialize telemetry")
		}
		deps.Telemetry = tel
		deps.TelemetryShutdown = shutdown
	}

	// Initialize database
	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.GetDatabaseURL())
	if err != nil {
		return deps, errors.Wrap(err, "failed to connect to database")
	}
	deps.DB = db

	if cfg.Database.AutoMigrate {
		if err := infrastructure.Migrate(ctx, db); err != nil {
			return deps, err
		}
	}

	// Initialize AWS infrastructure
	awsSettings := sharedinfra.AWSConfig{Region: cfg.AWS.Region, Endpoint: cfg.AWS.Endpoint}
	awsCfg, err := sharedinfra.LoadAWSConfig(ctx, awsSettings)
	if err != nil {
		return deps, err
	}
	deps.EventPublisher = sharedinfra.NewSNSEventPublisher(sharedinfra.NewSNSClient(awsCfg, awsSettings), cfg.AWS.SNSTopicArn)

	// Initialize stores
	deps.AuditStore = sharedinfra.NewPostgresAuditStore(db)
	deps.ReconciliationRepository = infrastructure.NewPostgresReconciliationRepository(db)

	// Initialize collaborators
	deps.Inventory = infrastructure.NewInventoryClient(cfg.Services.InventoryURL, cfg.HTTP.ClientTimeout)
	deps.Payments = infrastructure.NewPaymentClient(cfg.Services.PaymentURL, cfg.HTTP.ClientTimeout)
	deps.Ticketing = infrastructure.NewTicketingClient(cfg.Services.TicketingURL, cfg.HTTP.ClientTimeout)
	deps.Users = infrastructure.NewUserClient(cfg.Services.UserURL, cfg.HTTP.ClientTimeout)
	deps.Notifications = infrastructure.NewEventNotificationSender(deps.EventPublisher)

	// Initialize saga engine
	recorders := []saga.AuditRecorder{deps.AuditStore}
	if cfg.Saga.PublishAuditEvents {
		recorders = append(recorders, saga.NewEventRecorder(deps.EventPublisher))
	}
	deps.Orchestrator = saga.NewOrchestrator(
		saga.NewMultiRecorder(recorders...),
		logger,
		saga.WithStepTimeout(cfg.Saga.StepTimeout),
	)

	// Initialize use cases
	alerts := application.NewReconciliationAlerter(deps.EventPublisher, logger,
		application.WithPublishTimeout(cfg.Saga.NotificationTimeout))
	deps.PurchaseTicket = application.NewPurchaseTicket(
		deps.Inventory,
		deps.Payments,
		deps.Ticketing,
		deps.Notifications,
		deps.Orchestrator,
		alerts,
		logger,
		application.WithNotificationTimeout(cfg.Saga.NotificationTimeout),
	)
	deps.RegisterUser = application.NewRegisterUser(deps.Users, deps.Notifications, deps.Orchestrator, logger)
	deps.GetUserTickets = application.NewGetUserTickets(deps.Ticketing)
	deps.GetSagaAuditTrail = application.NewGetSagaAuditTrail(deps.AuditStore)
	deps.RecordReconciliationCase = application.NewRecordReconciliationCase(deps.ReconciliationRepository, logger)
	deps.ListReconciliationCases = application.NewListReconciliationCases(deps.ReconciliationRepository)

	// Initialize handlers
	deps.OrchestrationHandlers = handlers.NewOrchestrationHandlers(
		deps.PurchaseTicket,
		deps.RegisterUser,
		deps.GetUserTickets,
		deps.ListReconciliationCases,
		deps.GetSagaAuditTrail,
		logger,
	)
	deps.EventHandlers = handlers.NewEventHandlers(deps.RecordReconciliationCase, logger)

	deps.EventSubscriber = sharedinfra.NewSQSEventSubscriber(
		sharedinfra.NewSQSClient(awsCfg, awsSettings),
		cfg.AWS.SQSQueueURL,
		deps.EventHandlers,
		logger,
		sharedinfra.WithWorkers(cfg.AWS.SQSWorkers),
	)

	return deps, nil
}

// Close releases every dependency that was built
func (d *Dependencies) Close() error {
	var err error

	if d.DB != nil {
		err = multierr.Append(err, errors.Wrap(d.DB.Close(), "failed to close database"))
	}

	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}

	if d.Logger != nil {
		// stderr sync fails on some terminals
		_ = d.Logger.Sync()
	}

	return err
}
