package router

import (
	"loanlink/internal/app/handlers"
	"loanlink/internal/app/middleware"
	"loanlink/internal/pkg/logger"
	"loanlink/internal/service/interfaces"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
)

// Dependencies are the handles created once at startup and shared by every request.
type Dependencies struct {
	ServiceName    string
	AllowedOrigins []string
	HomeLoansLimit int64

	DB           handlers.Pinger
	Verifier     interfaces.TokenVerifier
	Loans        interfaces.LoanRepositoryInterface
	Users        interfaces.UserRepositoryInterface
	Applications interfaces.ApplicationRepositoryInterface
	Checkout     interfaces.CheckoutServiceInterface
}

func SetupRouter(deps Dependencies) *gin.Engine {
	if err := handlers.RegisterValidators(); err != nil {
		logger.Error("failed to register request validators", err)
	}

	server := gin.New()
	server.Use(
		gin.Recovery(),
		otelgin.Middleware(deps.ServiceName),
		middleware.NewMetricMiddleware(otel.Meter(deps.ServiceName)),
		middleware.AttachRequestDetails(),
		middleware.CORS(deps.AllowedOrigins),
	)

	healthCheckHandler := handlers.NewHealthCheckHandler(deps.DB)
	server.GET("/", healthCheckHandler.Root)
	server.GET("/health", healthCheckHandler.HealthCheck)

	loanHandler := handlers.NewLoanHandler(deps.Loans, deps.HomeLoansLimit)
	server.POST("/loans", loanHandler.CreateLoan)
	server.GET("/loans", loanHandler.GetAllLoans)
	server.GET("/loans-home", loanHandler.GetHomeLoans)
	server.GET("/loan-details/:id", loanHandler.GetLoanDetails)

	applicationHandler := handlers.NewApplicationHandler(deps.Applications)
	server.POST("/loan/application", applicationHandler.CreateApplication)
	server.GET("/my-loan/:email", applicationHandler.GetMyApplications)
	server.DELETE("/loan-application/:id", applicationHandler.DeleteApplication)

	userHandler := handlers.NewUserHandler(deps.Users)
	server.POST("/user", userHandler.UpsertUser)
	server.GET("/user/role", middleware.VerifyToken(deps.Verifier), userHandler.GetRole)

	checkoutHandler := handlers.NewCheckoutHandler(deps.Checkout)
	server.POST("/create-checkout-session", checkoutHandler.CreateCheckoutSession)
	server.GET("/payment-success", checkoutHandler.PaymentSuccess)

	return server
}
