package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/peerpay/peer_payment_app/internal/core/domain"
	portssvc "github.com/peerpay/peer_payment_app/internal/core/ports/services"
	"github.com/peerpay/peer_payment_app/internal/dto"
	"github.com/peerpay/peer_payment_app/internal/middleware"
	"github.com/peerpay/peer_payment_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCurrencyValidation()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	r.GET("/", getHome)

	registerLedgerRoutes(r, cfg, services.Ledger)
	registerCurrencyRoutes(r, services.Currency)

	// The original server answers every unmatched route itself.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Status: http.StatusNotFound,
			Error:  "This route does not exist yet!",
		})
	})
}

// registerLedgerRoutes sets up the routes for the core ledger operations.
// Mutating routes are rate limited per client IP.
func registerLedgerRoutes(r *gin.Engine, cfg *config.Config, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		slog.Warn("Invalid rate limit, using default", slog.String("rate_limit", cfg.RateLimit), slog.String("default", config.DefaultRateLimit))
		rate, _ = limiter.NewRateFromFormatted(config.DefaultRateLimit)
	}
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	user := r.Group("/user")
	{
		user.POST("", limitMiddleware, h.createUser)
		user.GET("", h.listUsers)
		user.POST("/deposit/:userId", limitMiddleware, h.deposit)
		user.POST("/send/:senderId/:receiverId", limitMiddleware, h.sendMoney)
		user.GET("/balance/:userId", h.getBalance)
	}
}

// registerCurrencyValidation wires the "currency" binding tag to the fixed
// currency set so malformed codes fail at the boundary.
func registerCurrencyValidation() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
			return domain.IsSupported(domain.Currency(fl.Field().String()))
		})
	}
}
