package runtime

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loanlink/internal/app/router"
	"loanlink/internal/pkg/cleanup"
	"loanlink/internal/pkg/config"
	"loanlink/internal/pkg/db/mongo"
	"loanlink/internal/pkg/identity"
	"loanlink/internal/pkg/log_messages"
	"loanlink/internal/pkg/logger"
	"loanlink/internal/pkg/models"
	"loanlink/internal/pkg/otel"
	"loanlink/internal/pkg/payments"
	"loanlink/internal/pkg/pubsub"
	"loanlink/internal/pkg/store/impl/applications"
	"loanlink/internal/pkg/store/impl/loans"
	"loanlink/internal/pkg/store/impl/users"
	"loanlink/internal/service/checkout"
	"loanlink/internal/service/interfaces"

	gcppubsub "cloud.google.com/go/pubsub"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	loadConfig       = config.LoadFromConfig
	setupTracing     = otel.Setup
	connectMongoDB   = mongo.ConnectToMongoDB
	newTokenVerifier = func(ctx context.Context, cfg config.FirebaseConfig) (interfaces.TokenVerifier, error) {
		verifier, err := identity.NewFirebaseVerifier(ctx, cfg.ServiceKey)
		if err != nil {
			return nil, err
		}
		return verifier, nil
	}
	newPaymentProcessor = func(cfg config.StripeConfig) interfaces.PaymentProcessorInterface {
		return payments.NewStripeProcessor(cfg.SecretKey)
	}
	newPaymentPublisher = func(ctx context.Context, cfg config.PubSubConfig) (PaymentPublisher, error) {
		client, err := pubsub.NewPubSubClient(ctx, cfg.ProjectID, cfg.PaymentTopic, gcppubsub.NewClient)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
)

// PaymentPublisher emits payment events and is closed on shutdown.
type PaymentPublisher interface {
	Close() error
	PublishPaymentConfirmed(ctx context.Context, msg models.PaymentConfirmedMessage) (string, error)
}

// App encapsulates application resources and lifecycle.
type App struct {
	Cfg              *config.AppConfig
	MongoClient      *mongo.MongoClient
	Verifier         interfaces.TokenVerifier
	PaymentProcessor interfaces.PaymentProcessorInterface
	PaymentPublisher PaymentPublisher
	ShutdownTracing  otel.ShutdownFunc
	HTTPServer       *http.Server
}

func New(ctx context.Context) (*App, error) {
	cfg, err := loadConfig()
	if err != nil {
		logger.CtxError(ctx, log_messages.FailedLoadingConfiguration, err)
		return nil, err
	}
	logger.Init(cfg.Logging.LogLevel)

	app := &App{Cfg: cfg}

	app.ShutdownTracing, err = setupTracing(ctx, cfg.Server.ServiceName, cfg.Otel.CollectorURL)
	if err != nil {
		logger.CtxError(ctx, "Failed to set up tracing", err)
		return nil, err
	}

	app.MongoClient, err = connectMongoDB(ctx, cfg.Mongo)
	if err != nil {
		logger.CtxError(ctx, "Failed to connect to MongoDB", err)
		app.Shutdown(ctx)
		return nil, err
	}

	app.Verifier, err = newTokenVerifier(ctx, cfg.Firebase)
	if err != nil {
		logger.CtxError(ctx, "Failed to create token verifier", err)
		app.Shutdown(ctx)
		return nil, err
	}

	app.PaymentProcessor = newPaymentProcessor(cfg.Stripe)

	if cfg.PubSub.Enabled {
		app.PaymentPublisher, err = newPaymentPublisher(ctx, cfg.PubSub)
		if err != nil {
			logger.CtxError(ctx, "Failure in PubSub publisher creation", err)
			app.Shutdown(ctx)
			return nil, err
		}
	} else {
		logger.CtxInfo(ctx, "PubSub disabled, payment events will not be published")
	}

	return app, nil
}

// Handler wires the repositories and checkout service into the HTTP router.
func (a *App) Handler() *gin.Engine {
	applicationRepo := applications.NewApplicationRepository(a.MongoClient)

	var publisher interfaces.PaymentEventPublisherInterface
	if a.PaymentPublisher != nil {
		publisher = a.PaymentPublisher
	}

	return router.SetupRouter(router.Dependencies{
		ServiceName:    a.Cfg.Server.ServiceName,
		AllowedOrigins: a.Cfg.Server.AllowedOrigins,
		HomeLoansLimit: a.Cfg.Loans.HomeLimit,
		DB:             a.MongoClient,
		Verifier:       a.Verifier,
		Loans:          loans.NewLoanRepository(a.MongoClient),
		Users:          users.NewUserRepository(a.MongoClient),
		Applications:   applicationRepo,
		Checkout:       checkout.NewCheckoutService(a.PaymentProcessor, applicationRepo, publisher, a.Cfg.Stripe),
	})
}

// Run starts the HTTP server, then blocks until a signal arrives, ctx is cancelled or
// the listener fails.
func (a *App) Run(ctx context.Context) error {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	a.HTTPServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", a.Cfg.Server.Port),
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.CtxInfo(ctx, "HTTP server listening", zap.String("addr", a.HTTPServer.Addr))
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.CtxError(ctx, fmt.Sprintf(log_messages.ServerStartFailure, err), err)
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var runErr error
	select {
	case <-quit:
	case <-ctx.Done():
	case runErr = <-serverErr:
	}

	logger.CtxInfo(ctx, log_messages.ServerShutdown)
	a.Shutdown(context.WithoutCancel(ctx))
	logger.CtxInfo(ctx, log_messages.ServerExiting)
	return runErr
}

// Shutdown gracefully closes all resources with bounded timeouts.
func (a *App) Shutdown(ctx context.Context) {
	var publisher interface{ Close() error }
	if a.PaymentPublisher != nil {
		publisher = a.PaymentPublisher
	}

	cleanup.CleanupResources(ctx,
		a.HTTPServer,
		publisher,
		a.MongoClient,
		a.ShutdownTracing,
	)
	logger.Sync()
}
