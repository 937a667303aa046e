package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peerpay/peer_payment_app/internal/apperrors"
	"github.com/peerpay/peer_payment_app/internal/core/domain"
	portssvc "github.com/peerpay/peer_payment_app/internal/core/ports/services"
	"github.com/peerpay/peer_payment_app/internal/dto"
	"github.com/peerpay/peer_payment_app/internal/middleware"
)

// currencyHandler handles HTTP requests for the static currency table.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: cs}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(r *gin.Engine, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := r.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrency)
	}
}

// listCurrencies handles GET /currencies.
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Failed to list currencies")
		return
	}

	respondSuccess(c, http.StatusOK, "Supported currencies", currencies)
}

// getCurrency handles GET /currencies/:code.
func (h *currencyHandler) getCurrency(c *gin.Context) {
	code := domain.Currency(c.Param("code"))

	rate, err := h.currencyService.GetRate(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownCurrency) {
			respondError(c, http.StatusForbidden, err.Error())
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to get currency rate", slog.String("error", err.Error()), slog.String("code", string(code)))
		respondError(c, http.StatusInternalServerError, "Failed to retrieve currency")
		return
	}

	respondSuccess(c, http.StatusOK, "Supported currency", dto.CurrencyResponse{
		Code: string(code),
		Rate: rate,
		Base: code == domain.BaseCurrency,
	})
}
