package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewRateLimit creates a rate limiting middleware using ulule/limiter.
// It allows limit requests per period per client IP and answers 429 beyond that.
func NewRateLimit(limit int64, period time.Duration) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: period,
		Limit:  limit,
	}

	// Create in-memory store
	store := memory.NewStore()

	instance := limiter.New(store, rate)

	return mgin.NewMiddleware(instance)
}
