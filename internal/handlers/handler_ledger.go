package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/peerpay/peer_payment_app/internal/apperrors"
	portssvc "github.com/peerpay/peer_payment_app/internal/core/ports/services"
	"github.com/peerpay/peer_payment_app/internal/dto"
	"github.com/peerpay/peer_payment_app/internal/middleware"
)

// ledgerHandler handles HTTP requests for the core ledger operations.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// createUser handles POST /user.
func (h *ledgerHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createUser", slog.String("error", err.Error()))
		respondError(c, http.StatusForbidden, bindingErrorMessage(err))
		return
	}

	account, err := h.ledgerService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", account.AccountID))
	respondSuccess(c, http.StatusCreated, "User created successfully", dto.ToAccountResponse(account))
}

// deposit handles POST /user/deposit/:userId.
func (h *ledgerHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("userId")

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for deposit", slog.String("error", err.Error()))
		respondError(c, http.StatusForbidden, bindingErrorMessage(err))
		return
	}

	account, err := h.ledgerService.Deposit(c.Request.Context(), accountID, req.Amount)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	message := fmt.Sprintf("You have successfully deposited %v", req.Amount)
	respondSuccess(c, http.StatusCreated, message, dto.ToAccountResponse(account))
}

// sendMoney handles POST /user/send/:senderId/:receiverId.
func (h *ledgerHandler) sendMoney(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	senderID := c.Param("senderId")
	receiverID := c.Param("receiverId")

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for sendMoney", slog.String("error", err.Error()))
		respondError(c, http.StatusForbidden, bindingErrorMessage(err))
		return
	}

	sender, err := h.ledgerService.Transfer(c.Request.Context(), senderID, receiverID, req.Amount)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	message := fmt.Sprintf("You have successfully sent %v", req.Amount)
	respondSuccess(c, http.StatusOK, message, dto.ToAccountResponse(sender))
}

// listUsers handles GET /user.
func (h *ledgerHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.ledgerService.ListAccounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list accounts from service", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Failed to list users")
		return
	}

	respondSuccess(c, http.StatusOK, "Users retrieved successfully", dto.ToListAccountResponse(accounts))
}

// getBalance handles GET /user/balance/:userId.
func (h *ledgerHandler) getBalance(c *gin.Context) {
	accountID := c.Param("userId")

	account, err := h.ledgerService.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	message := fmt.Sprintf("Your current balance is %v", account.Amount)
	respondSuccess(c, http.StatusOK, message, dto.ToAccountResponse(account))
}

// respondServiceError maps the error taxonomy of the service layer onto the
// status-code convention of the original server: business/validation
// failures are 403, missing resources are 404.
func (h *ledgerHandler) respondServiceError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrAccountNotFound):
		respondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, apperrors.ErrSenderNotFound):
		respondError(c, http.StatusNotFound, "Sender not found")
	case errors.Is(err, apperrors.ErrReceiverNotFound):
		respondError(c, http.StatusNotFound, "Receiver not found")
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		respondError(c, http.StatusForbidden, "You can't send an amount that is greater than your current balance")
	case errors.Is(err, apperrors.ErrUnknownCurrency), errors.Is(err, apperrors.ErrValidation):
		respondError(c, http.StatusForbidden, err.Error())
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Something went wrong")
	}
}

// respondSuccess renders the {status, message, data} envelope of the
// original server.
func respondSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.SuccessResponse{Status: status, Message: message, Data: data})
}

// respondError renders the {status, error} envelope of the original server.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Status: status, Error: message})
}

// bindingErrorMessage translates gin binding failures into the original
// server's field-specific validation messages.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}

	fe := verrs[0]
	switch fe.Field() {
	case "Username":
		return "Username is required"
	case "Email":
		return "email is required"
	case "Currency":
		if fe.Tag() == "currency" {
			return "Currency is not supported"
		}
		return "Currency is required"
	case "Amount":
		if fe.Tag() == "gt" {
			return "Amount must be greater than 0"
		}
		return "Amount is required"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
