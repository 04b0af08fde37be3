package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"stayhub/middleware"
	"stayhub/models"
	"stayhub/services/booking"
	"stayhub/services/property"
	"stayhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// availabilityCacheTTL bounds how stale a cached calendar read may be.
// Booking correctness never depends on this cache; the engine re-reads
// the store on every reserve.
const availabilityCacheTTL = 60 * time.Second

// AvailabilityHandler serves resolved calendars and host overrides.
type AvailabilityHandler struct {
	Engine     booking.BookingEngine
	Properties property.PropertyService
}

// NewAvailabilityHandler creates an AvailabilityHandler.
func NewAvailabilityHandler(engine booking.BookingEngine, props property.PropertyService) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine, Properties: props}
}

func availabilityCacheKey(propertyID, start, end string) string {
	return fmt.Sprintf("avail:%s:%s:%s", propertyID, start, end)
}

// Get returns the resolved per-day calendar for [startDate, endDate).
// Responses are cached in redis for a short TTL.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	var query models.GetAvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	propertyID := c.Param("id")
	ctx := context.Background()
	cache := utils.GetCacheClient()
	key := availabilityCacheKey(propertyID, query.StartDate, query.EndDate)

	if cached, err := cache.Get(ctx, key).Result(); err == nil {
		var days []models.DayAvailability
		if err := json.Unmarshal([]byte(cached), &days); err == nil {
			c.JSON(http.StatusOK, gin.H{"propertyId": propertyID, "days": days})
			return
		}
	}

	days, err := h.Engine.ResolveCalendar(propertyID, query.StartDate, query.EndDate)
	if err != nil {
		c.JSON(statusForEngineError(err), gin.H{"error": err.Error()})
		return
	}

	if data, err := json.Marshal(days); err == nil {
		if err := cache.Set(ctx, key, data, availabilityCacheTTL).Err(); err != nil {
			zap.L().Warn("Failed to cache availability", zap.String("propertyID", propertyID), zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"propertyId": propertyID, "days": days})
}

// Set bulk-upserts per-day overrides for a property owned by the caller
// and invalidates the cached calendar reads for it.
func (h *AvailabilityHandler) Set(c *gin.Context) {
	var input models.SetAvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	propertyID := c.Param("id")
	if err := h.Properties.SetAvailability(propertyID, middleware.ActorID(c), input); err != nil {
		c.JSON(statusForPropertyError(err), gin.H{"error": err.Error()})
		return
	}

	h.invalidateCache(propertyID)
	c.JSON(http.StatusOK, gin.H{"message": "availability updated", "days": len(input.Dates)})
}

func (h *AvailabilityHandler) invalidateCache(propertyID string) {
	ctx := context.Background()
	cache := utils.GetCacheClient()
	keys, err := cache.Keys(ctx, availabilityCacheKey(propertyID, "*", "*")).Result()
	if err != nil {
		zap.L().Warn("Failed to list availability cache keys", zap.String("propertyID", propertyID), zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := cache.Del(ctx, keys...).Err(); err != nil {
		zap.L().Warn("Failed to invalidate availability cache", zap.String("propertyID", propertyID), zap.Error(err))
	}
}
