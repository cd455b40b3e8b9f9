package bootstrap

import (
	"petgroom-be/internal/config"
	"petgroom-be/internal/controller"
	"petgroom-be/internal/pkg/logger"
	"petgroom-be/internal/repository/memory"
	"petgroom-be/internal/repository/unitofwork"
	"petgroom-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	OAuthController        controller.IOAuthController
	ClientController       controller.IClientController
	PackageController      controller.IPackageController
	SubscriptionController controller.ISubscriptionController
	SchedulingController   controller.ISchedulingController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(pubSub, cfg.Keys.AuditTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.AuditTopic,
		uowFactory,
	)

	// 3. OAuth infrastructure
	googleConf := &oauth2.Config{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		RedirectURL:  cfg.OAuth.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
	oauthStates := memory.NewOAuthStateRepository()

	// 4. Services
	authService := service.NewAuthService(uowFactory)
	oauthService := service.NewOAuthService(uowFactory, googleConf, oauthStates)
	clientService := service.NewClientService(uowFactory, publisherService)
	packageService := service.NewPackageService(uowFactory)
	subscriptionService := service.NewSubscriptionService(uowFactory, publisherService)
	schedulingService := service.NewSchedulingService(uowFactory, publisherService)

	// 5. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		OAuthController:        controller.NewOAuthController(oauthService),
		ClientController:       controller.NewClientController(clientService),
		PackageController:      controller.NewPackageController(packageService),
		SubscriptionController: controller.NewSubscriptionController(subscriptionService),
		SchedulingController:   controller.NewSchedulingController(schedulingService),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
