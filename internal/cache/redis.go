// Package cache keeps an optional Redis client for the server-computed
// stats summary. The service degrades gracefully: every helper is a
// no-op when Redis never connected. Directory lookups are deliberately
// never cached; each login and sales-list call re-fetches the sheet.
package cache

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"checkin-backend/internal/models"
	"checkin-backend/internal/timeutil"

	"github.com/redis/go-redis/v9"
)

const (
	statsKey = "stats:summary"
	statsTTL = 60 * time.Second
)

var client *redis.Client

// Init initializes the Redis connection
func Init() error {
	// K8s sets REDIS_SERVICE_HOST and REDIS_SERVICE_PORT for services
	host := os.Getenv("REDIS_SERVICE_HOST")
	if host == "" {
		host = "redis" // fallback to service name
	}
	port := os.Getenv("REDIS_SERVICE_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Close the failed client and set to nil for graceful degradation
		client.Close()
		client = nil
		return err
	}
	return nil
}

// statsField keys a summary by VN business day as well as the sale
// filter. The summary bakes in now-relative day/week/month boundaries,
// so an entry cached before local midnight must never answer a request
// on the next day; the day prefix makes it an automatic miss.
func statsField(day time.Time, saleName string) string {
	prefix := day.In(timeutil.VN).Format(timeutil.DateLayout)
	if saleName == "" {
		return prefix + "|_all"
	}
	return prefix + "|" + saleName
}

// GetCachedStats returns a cached stats summary for the sale filter
func GetCachedStats(ctx context.Context, saleName string) (models.StatsSummary, bool) {
	var summary models.StatsSummary
	if client == nil {
		return summary, false
	}
	data, err := client.HGet(ctx, statsKey, statsField(timeutil.Now(), saleName)).Bytes()
	if err != nil {
		return summary, false
	}
	if err := json.Unmarshal(data, &summary); err != nil {
		return summary, false
	}
	return summary, true
}

// CacheStats stores a stats summary for a short window
func CacheStats(ctx context.Context, saleName string, summary models.StatsSummary) {
	if client == nil {
		return
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return
	}
	client.HSet(ctx, statsKey, statsField(timeutil.Now(), saleName), data)
	client.Expire(ctx, statsKey, statsTTL)
}

// InvalidateStats drops all cached summaries. Called on every check-in
// create and delete so counts never lag a mutation by more than a miss.
func InvalidateStats(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, statsKey)
}
