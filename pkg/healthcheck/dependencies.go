package healthcheck

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// DatabaseChecker verifies the relational database connection.
func DatabaseChecker(db *gorm.DB) Checker {
	return CheckerFunc(func(ctx context.Context) Check {
		start := time.Now()
		check := Check{
			Name:        "database",
			Status:      StatusHealthy,
			LastChecked: time.Now().UTC(),
		}

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			check.Status = StatusUnhealthy
			check.Message = err.Error()
		}

		check.Duration = time.Since(start) / time.Millisecond
		return check
	})
}

// RedisChecker verifies the Redis connection. Redis failures degrade
// the service rather than take it down, since the cache and token
// store have fallbacks.
func RedisChecker(client *redis.Client) Checker {
	return CheckerFunc(func(ctx context.Context) Check {
		start := time.Now()
		check := Check{
			Name:        "redis",
			Status:      StatusHealthy,
			LastChecked: time.Now().UTC(),
		}

		if err := client.Ping(ctx).Err(); err != nil {
			check.Status = StatusDegraded
			check.Message = err.Error()
		}

		check.Duration = time.Since(start) / time.Millisecond
		return check
	})
}
