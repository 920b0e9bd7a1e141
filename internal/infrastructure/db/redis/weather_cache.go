package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/plannr/todo-api/internal/api/metrics"
	"github.com/plannr/todo-api/internal/core/ports"
)

const defaultWeatherTTL = time.Hour

// WeatherCache decorates a ports.WeatherProvider with a Redis cache.
// Key format: weather:<MM-dd>
type WeatherCache struct {
	next   ports.WeatherProvider
	client redis.Cmdable
	ttl    time.Duration
	log    zerolog.Logger
	now    func() time.Time
}

// NewWeatherCache wraps next. A non-positive ttl falls back to defaultWeatherTTL.
func NewWeatherCache(next ports.WeatherProvider, client redis.Cmdable, ttl time.Duration, log zerolog.Logger) *WeatherCache {
	if ttl <= 0 {
		ttl = defaultWeatherTTL
	}
	return &WeatherCache{next: next, client: client, ttl: ttl, log: log, now: time.Now}
}

// TodayWeather serves today's weather from Redis when present. Cache failures
// are logged and bypassed; only the wrapped provider's errors are returned.
func (c *WeatherCache) TodayWeather(ctx context.Context) (string, error) {
	key := c.key()

	cached, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		metrics.WeatherLookupsTotal.WithLabelValues("hit").Inc()
		return cached, nil
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Str("key", key).Msg("weather cache read failed")
	}

	weather, err := c.next.TodayWeather(ctx)
	if err != nil {
		metrics.WeatherLookupsTotal.WithLabelValues("error").Inc()
		return "", err
	}
	metrics.WeatherLookupsTotal.WithLabelValues("miss").Inc()

	if err := c.client.Set(ctx, key, weather, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("weather cache write failed")
	}
	return weather, nil
}

func (c *WeatherCache) key() string {
	return "weather:" + c.now().Format("01-02")
}
