package config

import (
	"context"

	"momovender/src/internal/delivery/http"
	"momovender/src/internal/delivery/http/middleware"
	"momovender/src/internal/delivery/http/route"
	"momovender/src/internal/gateway/messaging"
	"momovender/src/internal/repository"
	"momovender/src/internal/usecase"
	"momovender/src/pkg/databases/mysql"
	kafkaPkgConfluent "momovender/src/pkg/kafka/confluent"
	"momovender/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB          mysql.DBInterface
	App         *fiber.App
	Log         log.Log
	Validate    *validator.Validate
	Config      *viper.Viper
	Producer    kafkaPkgConfluent.Producer
	Redis       redis.UniversalClient
	AsynqClient *asynq.Client
	Async       *asynq.ServeMux
}

const (
	TypeDashboardBroadcast = "dashboard:broadcast"
)

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	agentRepository := repository.NewAgentRepository(config.DB)
	transactionRepository := repository.NewTransactionRepository(config.DB)
	floatRepository := repository.NewFloatRepository(config.DB)
	payoutRepository := repository.NewPayoutRepository(config.DB)
	dashboardRepository := repository.NewDashboardRepository(config.DB)
	branchRepository := repository.NewBranchRepository(config.DB)
	notificationRepository := repository.NewNotificationRepository(config.DB)
	reportRepository := repository.NewReportRepository(config.DB)

	transactionProducer := messaging.NewTransactionProducer(config.Producer, config.Log)
	ledgerProducer := messaging.NewLedgerProducer(config.Producer, config.Log)

	// setup use cases
	authUseCase := usecase.NewAuthUseCase(
		config.Log,
		config.Validate,
		agentRepository,
		config.Config,
		config.Redis,
	)
	transactionUseCase := usecase.NewTransactionUseCase(
		config.Log,
		config.Validate,
		transactionRepository,
		transactionProducer,
	)
	floatUseCase := usecase.NewFloatUseCase(
		config.Log,
		config.Validate,
		floatRepository,
		ledgerProducer,
	)
	payrollUseCase := usecase.NewPayrollUseCase(
		config.Log,
		config.Validate,
		payoutRepository,
		agentRepository,
		ledgerProducer,
	)
	dashboardUseCase := usecase.NewDashboardUseCase(
		config.Log,
		config.Validate,
		dashboardRepository,
		ledgerProducer,
	)
	agentUseCase := usecase.NewAgentUseCase(
		config.Log,
		config.Validate,
		agentRepository,
	)
	branchUseCase := usecase.NewBranchUseCase(
		config.Log,
		config.Validate,
		branchRepository,
	)
	notificationUseCase := usecase.NewNotificationUseCase(
		config.Log,
		config.Validate,
		notificationRepository,
		transactionProducer,
		config.Redis,
	)
	reportUseCase := usecase.NewReportUseCase(
		config.Log,
		config.Validate,
		reportRepository,
	)

	// setup controllers
	authController := http.NewAuthController(authUseCase, config.Log)
	transactionController := http.NewTransactionController(transactionUseCase, config.Log)
	floatController := http.NewFloatController(floatUseCase, config.Log)
	payrollController := http.NewPayrollController(payrollUseCase, config.Log)
	dashboardController := http.NewDashboardController(dashboardUseCase, config.Log)
	agentController := http.NewAgentController(agentUseCase, config.Log)
	branchController := http.NewBranchController(branchUseCase, config.Log)
	notificationController := http.NewNotificationController(notificationUseCase, config.Log)
	reportController := http.NewReportController(reportUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.NewAuth(config.Config, config.Redis)

	if config.Async != nil {
		config.Async.HandleFunc(TypeDashboardBroadcast, func(ctx context.Context, task *asynq.Task) error {
			return dashboardUseCase.Broadcast(ctx)
		})
	}

	routeConfig := route.RouteConfig{
		App:                    config.App,
		AuthController:         authController,
		TransactionController:  transactionController,
		FloatController:        floatController,
		PayrollController:      payrollController,
		DashboardController:    dashboardController,
		AgentController:        agentController,
		BranchController:       branchController,
		NotificationController: notificationController,
		ReportController:       reportController,
		AuthMiddleware:         authMiddleware,
	}
	routeConfig.Setup()
}
