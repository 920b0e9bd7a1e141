// Package weather fetches the day's weather from an external JSON feed.
package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 5 * time.Second

var ErrNoWeatherToday = errors.New("no weather data for today")

// entry is one element of the feed: {"date": "MM-dd", "weather": "..."}.
type entry struct {
	Date    string `json:"date"`
	Weather string `json:"weather"`
}

// Client implements ports.WeatherProvider against the weather feed.
type Client struct {
	http *resty.Client
	url  string
	now  func() time.Time
}

func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rc := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: rc, url: url, now: time.Now}
}

// TodayWeather returns the feed entry whose date matches today.
func (c *Client) TodayWeather(ctx context.Context) (string, error) {
	var entries []entry
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&entries).
		Get(c.url)
	if err != nil {
		return "", fmt.Errorf("fetch weather: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("failed to fetch weather data: status %d", resp.StatusCode())
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("fetch weather: %w", ErrNoWeatherToday)
	}

	today := c.now().Format("01-02")
	for _, e := range entries {
		if e.Date == today {
			return e.Weather, nil
		}
	}
	return "", ErrNoWeatherToday
}
