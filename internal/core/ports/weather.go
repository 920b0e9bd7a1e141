package ports

import "context"

// WeatherProvider returns a short description of today's weather.
type WeatherProvider interface {
	TodayWeather(ctx context.Context) (string, error)
}
