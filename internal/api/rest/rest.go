package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-referral/internal/api/middleware"
	"github.com/feral-file/ff-referral/internal/ratelimit"
)

// SetupRoutes configures all REST API routes. Writes are rate limited when limiter is set.
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, limiter ratelimit.Limiter) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Trade intake (trusted services only)
		v1.POST("/trades", middleware.APIKeyAuth(authCfg), middleware.RateLimit(limiter, "trades"), handler.ProcessTrade)

		// Referrals (acting user is the token subject)
		v1.POST("/referrals", middleware.JWTAuth(authCfg), middleware.RateLimit(limiter, "referrals"), handler.RegisterReferral)
		v1.POST("/referrals/code", middleware.JWTAuth(authCfg), middleware.RateLimit(limiter, "referrals"), handler.GetReferralCode)

		// User reads (public read access)
		v1.GET("/users/:id/network", handler.GetNetwork)
		v1.GET("/users/:id/earnings", handler.GetEarnings)
		v1.GET("/users/:id/trades", handler.ListTrades)
		v1.GET("/users/:id/trades/:trade_id/commission", handler.GetTradeCommission)
		v1.GET("/users/:id/proof", handler.GetProof)

		// Balances and roots
		v1.GET("/balances", handler.GetUnclaimedBalances)
		v1.POST("/roots", middleware.APIKeyAuth(authCfg), middleware.RateLimit(limiter, "roots"), handler.GenerateRoot)
		v1.GET("/roots/latest", handler.GetLatestRoot)

		// Claims (acting user is the token subject)
		v1.POST("/claims", middleware.JWTAuth(authCfg), middleware.RateLimit(limiter, "claims"), handler.Claim)
	}
}
