package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-referral/internal/api/middleware"
	"github.com/feral-file/ff-referral/internal/api/shared/dto"
	"github.com/feral-file/ff-referral/internal/api/shared/executor"
	"github.com/feral-file/ff-referral/internal/domain"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ProcessTrade records a trade and returns its commission splits
	// POST /api/v1/trades?async=<bool>
	ProcessTrade(c *gin.Context)

	// RegisterReferral links the authenticated user to a referrer
	// POST /api/v1/referrals
	RegisterReferral(c *gin.Context)

	// GetReferralCode returns the authenticated user's referral code
	// POST /api/v1/referrals/code
	GetReferralCode(c *gin.Context)

	// GetNetwork returns a user's downline per level
	// GET /api/v1/users/:id/network
	GetNetwork(c *gin.Context)

	// GetEarnings returns a user's totals per token and level
	// GET /api/v1/users/:id/earnings
	GetEarnings(c *gin.Context)

	// ListTrades lists a user's trades
	// GET /api/v1/users/:id/trades?limit=<limit>&offset=<offset>
	ListTrades(c *gin.Context)

	// GetTradeCommission returns what a user earned from one trade
	// GET /api/v1/users/:id/trades/:trade_id/commission
	GetTradeCommission(c *gin.Context)

	// GetProof returns a user's inclusion proof
	// GET /api/v1/users/:id/proof?chain=<chain>&token=<token>
	GetProof(c *gin.Context)

	// GetUnclaimedBalances returns the claimable balances of a market
	// GET /api/v1/balances?chain=<chain>&token=<token>
	GetUnclaimedBalances(c *gin.Context)

	// GenerateRoot commits a new Merkle root
	// POST /api/v1/roots?async=<bool>
	GenerateRoot(c *gin.Context)

	// GetLatestRoot returns the last committed root
	// GET /api/v1/roots/latest?chain=<chain>&token=<token>
	GetLatestRoot(c *gin.Context)

	// Claim claims the authenticated user's balance
	// POST /api/v1/claims
	Claim(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

func (h *handler) ProcessTrade(c *gin.Context) {
	async, ok := parseAsync(c)
	if !ok {
		return
	}

	var req dto.TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ProcessTrade(c.Request.Context(), req, async)
	if err != nil {
		respondError(c, err, "Failed to process trade")
		return
	}

	switch {
	case resp.Queued:
		c.JSON(http.StatusAccepted, resp)
	case resp.Duplicate:
		c.JSON(http.StatusOK, resp)
	default:
		c.JSON(http.StatusCreated, resp)
	}
}

func (h *handler) RegisterReferral(c *gin.Context) {
	refereeID := middleware.AuthSubject(c)
	if refereeID == "" {
		respondUnauthorized(c, "User token required")
		return
	}

	var req dto.RegisterReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.RegisterReferral(c.Request.Context(), refereeID, req)
	if err != nil {
		respondError(c, err, "Failed to register referral")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *handler) GetReferralCode(c *gin.Context) {
	userID := middleware.AuthSubject(c)
	if userID == "" {
		respondUnauthorized(c, "User token required")
		return
	}

	resp, err := h.executor.GetReferralCode(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to get referral code")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetNetwork(c *gin.Context) {
	userID, ok := userParam(c)
	if !ok {
		return
	}

	resp, err := h.executor.GetNetwork(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to get network")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetEarnings(c *gin.Context) {
	userID, ok := userParam(c)
	if !ok {
		return
	}

	resp, err := h.executor.GetEarnings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to get earnings")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListTrades(c *gin.Context) {
	userID, ok := userParam(c)
	if !ok {
		return
	}

	var page dto.PaginationQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ListTrades(c.Request.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		respondError(c, err, "Failed to list trades")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetTradeCommission(c *gin.Context) {
	userID, ok := userParam(c)
	if !ok {
		return
	}
	tradeID := c.Param("trade_id")
	if tradeID == "" {
		respondBadRequest(c, "Trade ID is required")
		return
	}

	resp, err := h.executor.GetTradeCommission(c.Request.Context(), userID, tradeID)
	if err != nil {
		respondError(c, err, "Failed to get trade commission")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetProof(c *gin.Context) {
	userID, ok := userParam(c)
	if !ok {
		return
	}
	market, ok := marketQuery(c)
	if !ok {
		return
	}

	resp, err := h.executor.GetProof(c.Request.Context(), userID, market.Chain, market.Token)
	if err != nil {
		respondError(c, err, "Failed to get proof")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetUnclaimedBalances(c *gin.Context) {
	market, ok := marketQuery(c)
	if !ok {
		return
	}

	resp, err := h.executor.GetUnclaimedBalances(c.Request.Context(), market.Chain, market.Token)
	if err != nil {
		respondError(c, err, "Failed to get balances")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GenerateRoot(c *gin.Context) {
	async, ok := parseAsync(c)
	if !ok {
		return
	}
	market, ok := marketBody(c)
	if !ok {
		return
	}

	resp, err := h.executor.GenerateRoot(c.Request.Context(), market.Chain, market.Token, async)
	if err != nil {
		respondError(c, err, "Failed to generate root")
		return
	}

	if async {
		c.JSON(http.StatusAccepted, resp)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *handler) GetLatestRoot(c *gin.Context) {
	market, ok := marketQuery(c)
	if !ok {
		return
	}

	resp, err := h.executor.GetLatestRoot(c.Request.Context(), market.Chain, market.Token)
	if err != nil {
		respondError(c, err, "Failed to get latest root")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) Claim(c *gin.Context) {
	userID := middleware.AuthSubject(c)
	if userID == "" {
		respondUnauthorized(c, "User token required")
		return
	}
	market, ok := marketBody(c)
	if !ok {
		return
	}

	resp, err := h.executor.Claim(c.Request.Context(), userID, market.Chain, market.Token)
	if err != nil {
		respondError(c, err, "Failed to claim")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}

func userParam(c *gin.Context) (string, bool) {
	userID := c.Param("id")
	if userID == "" {
		respondBadRequest(c, "User ID is required")
		return "", false
	}
	return userID, true
}

func parseAsync(c *gin.Context) (bool, bool) {
	raw := c.Query("async")
	if raw == "" {
		return false, true
	}
	async, err := strconv.ParseBool(raw)
	if err != nil {
		respondBadRequest(c, "Invalid async parameter", raw)
		return false, false
	}
	return async, true
}

func marketQuery(c *gin.Context) (dto.MarketRequest, bool) {
	var market dto.MarketRequest
	if err := c.ShouldBindQuery(&market); err != nil {
		respondValidationError(c, err.Error())
		return market, false
	}
	return validateMarket(c, market)
}

func marketBody(c *gin.Context) (dto.MarketRequest, bool) {
	var market dto.MarketRequest
	if err := c.ShouldBindJSON(&market); err != nil {
		respondValidationError(c, err.Error())
		return market, false
	}
	return validateMarket(c, market)
}

func validateMarket(c *gin.Context, market dto.MarketRequest) (dto.MarketRequest, bool) {
	chain, err := domain.ParseChain(string(market.Chain))
	if err != nil {
		respondBadRequest(c, "Invalid chain", err.Error())
		return market, false
	}
	market.Chain = chain
	return market, true
}
