package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "cobranca_service/docs" // This will be auto-generated
	"cobranca_service/internal/adapter/http/handlers"
	repository2 "cobranca_service/internal/adapter/persistence/repository"
	"cobranca_service/internal/infrastructure/database"
	"cobranca_service/internal/infrastructure/notifications"
	"cobranca_service/internal/infrastructure/payments/iugu"
	"cobranca_service/internal/infrastructure/receipts"
	"cobranca_service/internal/usecase"
	"cobranca_service/internal/usecase/interfaces"
	"cobranca_service/internal/worker"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	awsCfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	ddb := database.ConnectDynamoDB()

	userRepo := repository2.NewUserDynamoRepository(ddb)
	cardRepo := repository2.NewSavedCardDynamoRepository(ddb)
	subscriptionRepo := repository2.NewSubscriptionDynamoRepository(ddb)

	gateway, err := iugu.NewClient(iugu.Config{
		APIToken:   os.Getenv("IUGU_API_TOKEN"),
		AccountID:  os.Getenv("IUGU_ACCOUNT_ID"),
		TestMode:   os.Getenv("IUGU_TEST_MODE") == "true",
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	})
	if err != nil {
		log.Fatalf("Iugu gateway not configured: %v", err)
	}

	var notifier interfaces.IPushNotifier
	sqsNotifier, err := notifications.NewSQSNotifier(awsCfg)
	if err != nil {
		log.Printf("Push notifier not configured: %v", err)
	} else {
		notifier = sqsNotifier
	}

	paymentUseCase := usecase.NewPaymentUseCase(gateway, userRepo, notifier)
	walletUseCase := usecase.NewWalletUseCase(gateway, userRepo, cardRepo)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	walletHandler := handlers.NewWalletHandler(walletUseCase)

	startSubscriptionWorker(subscriptionRepo)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, paymentHandler, walletHandler)
}

// startSubscriptionWorker launches the receipt polling loop when both store
// credentials are present; the service runs fine without it.
func startSubscriptionWorker(repo interfaces.ISubscriptionRepository) {
	android, err := receipts.NewGooglePlayVerifier(receipts.GooglePlayConfig{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RefreshToken: os.Getenv("GOOGLE_REFRESH_TOKEN"),
		BundleID:     os.Getenv("ANDROID_BUNDLE_ID"),
	})
	if err != nil {
		log.Printf("Android receipt verifier not configured: %v", err)
		return
	}

	ios, err := receipts.NewAppStoreVerifier(receipts.AppStoreConfig{
		SharedSecret: os.Getenv("ITUNES_SHARED_SECRET"),
		Environment:  os.Getenv("ITUNES_ENVIRONMENT"),
	})
	if err != nil {
		log.Printf("iOS receipt verifier not configured: %v", err)
		return
	}

	interval := 6 * time.Hour
	if v := os.Getenv("RECEIPT_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			interval = d
		}
	}

	uc := usecase.NewSubscriptionUseCase(repo, android, ios)
	go worker.NewSubscriptionWorker(uc, interval).Start(context.Background())
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
