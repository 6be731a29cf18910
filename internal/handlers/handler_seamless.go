package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger_backend/internal/core/services"
	"github.com/SscSPs/wallet_ledger_backend/internal/dto"
	"github.com/SscSPs/wallet_ledger_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// seamlessHandler serves the provider webhooks. Every outcome, including malformed bodies,
// is answered with HTTP 200 and a protocol response.
type seamlessHandler struct {
	seamlessService portssvc.SeamlessWalletSvc
}

// RegisterSeamlessRoutes registers the provider-facing webhook routes.
func RegisterSeamlessRoutes(rg gin.IRoutes, seamlessService portssvc.SeamlessWalletSvc) {
	h := &seamlessHandler{seamlessService: seamlessService}

	rg.POST("/deposit", h.deposit)
	rg.POST("/withdraw", h.withdraw)
	rg.POST("/getbalance", h.getBalance)
}

// deposit godoc
// @Summary Seamless wallet deposit webhook
// @Description Credits wins, refunds and bonuses for a batch of member transactions
// @Tags seamless
// @Accept  json
// @Produce  json
// @Param   request body dto.SeamlessTransactionRequest true "Signed batch"
// @Success 200 {object} dto.SeamlessResponse
// @Router /deposit [post]
func (h *seamlessHandler) deposit(c *gin.Context) {
	var req dto.SeamlessTransactionRequest
	raw, ok := decodeWebhook(c, &req)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.seamlessService.Deposit(c.Request.Context(), req, raw))
}

// withdraw godoc
// @Summary Seamless wallet withdraw webhook
// @Description Debits bets and fees for a batch of member transactions
// @Tags seamless
// @Accept  json
// @Produce  json
// @Param   request body dto.SeamlessTransactionRequest true "Signed batch"
// @Success 200 {object} dto.SeamlessResponse
// @Router /withdraw [post]
func (h *seamlessHandler) withdraw(c *gin.Context) {
	var req dto.SeamlessTransactionRequest
	raw, ok := decodeWebhook(c, &req)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.seamlessService.Withdraw(c.Request.Context(), req, raw))
}

// getBalance godoc
// @Summary Seamless wallet balance query
// @Tags seamless
// @Accept  json
// @Produce  json
// @Param   request body dto.GetBalanceRequest true "Signed balance query"
// @Success 200 {object} dto.SeamlessResponse
// @Router /getbalance [post]
func (h *seamlessHandler) getBalance(c *gin.Context) {
	var req dto.GetBalanceRequest
	raw, ok := decodeWebhook(c, &req)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.seamlessService.GetBalance(c.Request.Context(), req, raw))
}

// decodeWebhook binds the body into dst and returns the raw bytes gin cached while binding.
// On failure it answers the request itself and returns false.
func decodeWebhook(c *gin.Context, dst any) (json.RawMessage, bool) {
	logger := middleware.GetLoggerFromContext(c)
	if err := c.ShouldBindBodyWith(dst, binding.JSON); err != nil {
		logger.Warn("Failed to bind webhook body", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, services.ValidationFailedResponse(err))
		return nil, false
	}

	var raw json.RawMessage
	if cached, ok := c.Get(gin.BodyBytesKey); ok {
		if body, ok := cached.([]byte); ok {
			raw = body
		}
	}
	return raw, true
}
