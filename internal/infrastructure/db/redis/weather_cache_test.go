package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type countingProvider struct {
	weather string
	err     error
	calls   int
}

func (p *countingProvider) TodayWeather(context.Context) (string, error) {
	p.calls++
	return p.weather, p.err
}

func newTestCache(t *testing.T, next *countingProvider) (*WeatherCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache := NewWeatherCache(next, client, time.Minute, zerolog.Nop())
	cache.now = func() time.Time { return time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC) }
	return cache, mr
}

func TestWeatherCache_MissThenHit(t *testing.T) {
	next := &countingProvider{weather: "Sunny"}
	cache, mr := newTestCache(t, next)

	for i := 0; i < 3; i++ {
		got, err := cache.TodayWeather(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "Sunny" {
			t.Fatalf("expected Sunny, got %q", got)
		}
	}

	if next.calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", next.calls)
	}
	if v, _ := mr.Get("weather:03-07"); v != "Sunny" {
		t.Fatalf("expected cached value, got %q", v)
	}
	if ttl := mr.TTL("weather:03-07"); ttl != time.Minute {
		t.Fatalf("expected 1m ttl, got %s", ttl)
	}
}

func TestWeatherCache_Expiry(t *testing.T) {
	next := &countingProvider{weather: "Rainy"}
	cache, mr := newTestCache(t, next)

	_, _ = cache.TodayWeather(context.Background())
	mr.FastForward(2 * time.Minute)
	_, _ = cache.TodayWeather(context.Background())

	if next.calls != 2 {
		t.Fatalf("expected refetch after expiry, got %d calls", next.calls)
	}
}

func TestWeatherCache_UpstreamErrorNotCached(t *testing.T) {
	upstream := errors.New("boom")
	next := &countingProvider{err: upstream}
	cache, mr := newTestCache(t, next)

	if _, err := cache.TodayWeather(context.Background()); !errors.Is(err, upstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if mr.Exists("weather:03-07") {
		t.Fatalf("errors must not be cached")
	}
}

func TestWeatherCache_RedisDownFallsThrough(t *testing.T) {
	next := &countingProvider{weather: "Windy"}
	cache, mr := newTestCache(t, next)
	mr.Close()

	got, err := cache.TodayWeather(context.Background())
	if err != nil {
		t.Fatalf("cache failure must not fail the lookup: %v", err)
	}
	if got != "Windy" || next.calls != 1 {
		t.Fatalf("expected upstream value, got %q after %d calls", got, next.calls)
	}
}
