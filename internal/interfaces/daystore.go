package interfaces

import (
	"context"
	"time"

	"trading-assistant/internal/types"
)

// DayStore locates and serves one trading day's rows per calendar date.
type DayStore interface {
	// AvailableDates returns the distinct dates discoverable from the
	// store's day files, sorted ascending.
	AvailableDates(ctx context.Context) []time.Time

	// LoadDay returns the trading day for a date. ok is false when the day
	// has no data for any reason; callers must treat absence and load
	// failure identically.
	LoadDay(ctx context.Context, date time.Time) (day *types.TradingDay, ok bool)
}
