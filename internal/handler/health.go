package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/guilhermehba/estoque-ferro-velho/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health returns a JSON health check response.
// db is nil when running on the in-memory store; rdb is nil when the report
// queue is disabled. Absent backends report "disabled" and do not degrade
// the overall status.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "memory"
		if db != nil {
			dbStatus = "connected"
			sqlDB, err := db.DB()
			if err != nil || sqlDB.PingContext(ctx) != nil {
				dbStatus = "error"
			}
		}

		redisStatus := "disabled"
		dlq := gin.H{}
		if rdb != nil {
			redisStatus = "connected"
			if rdb.Ping(ctx).Err() != nil {
				redisStatus = "error"
			} else {
				// parked job counts; failures here are not a health problem
				for _, queue := range []string{worker.QueueReport, worker.QueueEmail} {
					if n, err := worker.DLQLength(ctx, rdb, queue); err == nil {
						dlq[queue] = n
					}
				}
			}
		}

		status := http.StatusOK
		if dbStatus == "error" || redisStatus == "error" {
			status = http.StatusServiceUnavailable
		}

		body := gin.H{
			"ok":    status == http.StatusOK,
			"db":    dbStatus,
			"redis": redisStatus,
		}
		if len(dlq) > 0 {
			body["dlq"] = dlq
		}
		c.JSON(status, body)
	}
}
