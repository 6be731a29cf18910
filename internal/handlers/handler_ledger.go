package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	portssvc "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger_backend/internal/dto"
	"github.com/SscSPs/wallet_ledger_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ledgerHandler struct {
	ledgerService      portssvc.LedgerReaderSvc
	accountService     portssvc.AccountCashierSvc
	idempotencyService portssvc.IdempotencySvc
}

// RegisterLedgerRoutes registers the ledger read paths and the system wallet capital routes.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerReaderSvc, accountService portssvc.AccountCashierSvc, idempotencyService portssvc.IdempotencySvc) {
	h := &ledgerHandler{
		ledgerService:      ledgerService,
		accountService:     accountService,
		idempotencyService: idempotencyService,
	}

	rg.GET("/accounts/:id/ledger-entries", h.listEntries)
	rg.GET("/external-transactions/:transactionID", h.getExternalTransaction)

	capital := rg.Group("/capital")
	{
		capital.POST("/inject", h.injectCapital)
		capital.POST("/extract", h.extractCapital)
	}
}

// listEntries godoc
// @Summary List ledger entries of an account
// @Description Pages through the entries touching an account, newest first
// @Tags ledger
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   limit query int false "Page size" default(50)
// @Param   next_token query string false "Token from the previous page"
// @Success 200 {object} dto.ListLedgerEntriesResponse
// @Failure 400 {object} map[string]string "Invalid pagination"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to list ledger entries"
// @Security BearerAuth
// @Router /api/v1/accounts/{id}/ledger-entries [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("account_id", c.Param("id")))
	var params dto.ListLedgerEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.ledgerService.ListEntries(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list ledger entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getExternalTransaction godoc
// @Summary Attempt history of a provider transaction
// @Description Lists every recorded attempt (completed, failed, duplicate, info) of one provider transaction id
// @Tags ledger
// @Produce  json
// @Param   transactionID path string true "Provider transaction ID"
// @Success 200 {object} dto.ExternalTransactionHistoryResponse
// @Failure 404 {object} map[string]string "No attempts recorded"
// @Failure 500 {object} map[string]string "Failed to load attempt history"
// @Security BearerAuth
// @Router /api/v1/external-transactions/{transactionID} [get]
func (h *ledgerHandler) getExternalTransaction(c *gin.Context) {
	txID := c.Param("transactionID")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("transaction_id", txID))

	attempts, err := h.idempotencyService.History(c.Request.Context(), txID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to load attempt history")
		return
	}
	c.JSON(http.StatusOK, dto.ExternalTransactionHistoryResponse{TransactionID: txID, Attempts: attempts})
}

// injectCapital godoc
// @Summary Inject capital into the system wallet
// @Tags capital
// @Accept  json
// @Produce  json
// @Param   amount body dto.AmountRequest true "Amount in minor units"
// @Success 200 {object} dto.BalanceChangeResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 500 {object} map[string]string "Failed to inject capital"
// @Security BearerAuth
// @Router /api/v1/capital/inject [post]
func (h *ledgerHandler) injectCapital(c *gin.Context) {
	h.capital(c, domain.CapitalInjection)
}

// extractCapital godoc
// @Summary Extract capital out of the system wallet
// @Tags capital
// @Accept  json
// @Produce  json
// @Param   amount body dto.AmountRequest true "Amount in minor units"
// @Success 200 {object} dto.BalanceChangeResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 422 {object} map[string]string "Insufficient balance"
// @Failure 500 {object} map[string]string "Failed to extract capital"
// @Security BearerAuth
// @Router /api/v1/capital/extract [post]
func (h *ledgerHandler) extractCapital(c *gin.Context) {
	h.capital(c, domain.CapitalExtraction)
}

func (h *ledgerHandler) capital(c *gin.Context, kind domain.TransactionKind) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("kind", string(kind)))
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for capital movement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	var (
		change *domain.BalanceChange
		err    error
	)
	if kind == domain.CapitalInjection {
		change, err = h.accountService.InjectCapital(c.Request.Context(), req.Amount, req.Note)
	} else {
		change, err = h.accountService.ExtractCapital(c.Request.Context(), req.Amount, req.Note)
	}
	if err != nil {
		respondWithError(c, logger, err, "Failed to move capital")
		return
	}

	logger.Info("Capital movement committed", slog.Int64("amount", req.Amount), slog.Int64("balance_after", change.BalanceAfter))
	c.JSON(http.StatusOK, dto.ToBalanceChangeResponse(change))
}
