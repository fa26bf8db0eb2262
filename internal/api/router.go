package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"coffee-fleet-backend/config"
	"coffee-fleet-backend/internal/mw"
	"coffee-fleet-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, brews BrewScheduler, cfg *config.Config, webpushOptions *webpush.Options) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, brews, webpushOptions)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	// The stats endpoints recompute over the whole fleet on every call, so
	// they get a short response cache. Everything else is served fresh.
	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/machines", handler.ListMachines)
		api.GET("/machines/:id", handler.GetMachine)
		api.POST("/machines", handler.CreateMachine)
		api.PUT("/machines/:id", handler.UpdateMachine)
		api.DELETE("/machines/:id", handler.DeleteMachine)

		api.GET("/brews", handler.ListBrews)
		api.GET("/brews/:id", handler.GetBrew)
		api.POST("/brews", handler.CreateBrew)

		api.GET("/analytics", handler.ListAnalytics)
		api.POST("/analytics", handler.CreateAnalytics)

		api.GET("/user-settings/:userId", handler.GetUserSettings)
		api.POST("/user-settings", handler.UpsertUserSettings)

		api.GET("/dashboard/stats", caching, handler.DashboardStats)
		api.GET("/admin/stats", caching, handler.AdminStats)
		api.GET("/admin/machines", handler.AdminMachines)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
