package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	portssvc "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger_backend/internal/dto"
	"github.com/SscSPs/wallet_ledger_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts of the hierarchy.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// RegisterAccountRoutes registers routes related to accounts.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("/:id", h.getAccount)
		accounts.GET("/:id/children", h.listChildren)
		accounts.PATCH("/:id/status", h.updateStatus)
		accounts.POST("/:id/cash-in", h.cashIn)
		accounts.POST("/:id/cash-out", h.cashOut)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates an owner, agent or player under its parent. A positive initial balance is transferred from the parent atomically.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "User name already taken"
// @Failure 422 {object} map[string]string "Parent cannot fund the initial balance"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Security BearerAuth
// @Router /api/v1/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create account", slog.String("user_name", req.UserName), slog.String("kind", string(req.Kind)))

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Retrieves details and the current balance of an account
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Security BearerAuth
// @Router /api/v1/accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("account_id", c.Param("id")))

	account, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listChildren godoc
// @Summary List the direct downline of an account
// @Tags accounts
// @Produce  json
// @Param   id path string true "Parent account ID"
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} map[string]string "Invalid pagination"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /api/v1/accounts/{id}/children [get]
func (h *accountHandler) listChildren(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("parent_id", c.Param("id")))
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListChildren", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	children, err := h.accountService.ListChildren(c.Request.Context(), c.Param("id"), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(children)})
}

// updateStatus godoc
// @Summary Suspend or re-activate an account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   status body dto.UpdateAccountStatusRequest true "New status"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to update account"
// @Security BearerAuth
// @Router /api/v1/accounts/{id}/status [patch]
func (h *accountHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("account_id", c.Param("id")))
	var req dto.UpdateAccountStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccountStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccountStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// cashIn godoc
// @Summary Move money from the parent into an account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   amount body dto.AmountRequest true "Amount in minor units"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} map[string]string "Insufficient balance, suspended account or transfer not permitted"
// @Failure 500 {object} map[string]string "Failed to cash in"
// @Security BearerAuth
// @Router /api/v1/accounts/{id}/cash-in [post]
func (h *accountHandler) cashIn(c *gin.Context) {
	h.move(c, "cash-in", h.accountService.CashIn)
}

// cashOut godoc
// @Summary Move money from an account back to its parent
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   amount body dto.AmountRequest true "Amount in minor units"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} map[string]string "Insufficient balance, suspended account or transfer not permitted"
// @Failure 500 {object} map[string]string "Failed to cash out"
// @Security BearerAuth
// @Router /api/v1/accounts/{id}/cash-out [post]
func (h *accountHandler) cashOut(c *gin.Context) {
	h.move(c, "cash-out", h.accountService.CashOut)
}

type cashFunc func(ctx context.Context, accountID string, amount int64, note string) (*domain.TransferResult, error)

func (h *accountHandler) move(c *gin.Context, op string, fn cashFunc) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("account_id", c.Param("id")), slog.String("operation", op))
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for cash movement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if operatorID, ok := middleware.GetOperatorIDFromContext(c); ok {
		logger = logger.With(slog.String("operator_id", operatorID))
	}

	res, err := fn(c.Request.Context(), c.Param("id"), req.Amount, req.Note)
	if err != nil {
		respondWithError(c, logger, err, "Failed to "+op)
		return
	}
	logger.Info("Cash movement committed", slog.Int64("amount", req.Amount), slog.String("entry_id", res.Entry.ID))
	c.JSON(http.StatusOK, dto.ToTransferResponse(res))
}
