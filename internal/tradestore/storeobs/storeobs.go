package storeobs

import (
	"context"
	"time"

	"trading-assistant/internal/interfaces"
	"trading-assistant/internal/logger"
	"trading-assistant/internal/trace"
	"trading-assistant/internal/types"
)

type observableDayStore struct {
	store interfaces.DayStore
}

var _ interfaces.DayStore = (*observableDayStore)(nil)

func Wrap(store interfaces.DayStore) interfaces.DayStore {
	return &observableDayStore{store: store}
}

func (ods *observableDayStore) AvailableDates(ctx context.Context) []time.Time {
	ctx, span := trace.StartSpan(ctx, "tradestore.AvailableDates")
	defer span.End()

	dates := ods.store.AvailableDates(ctx)

	logger.DebugSkip(ctx, 1, "Scanned available trading dates",
		"count", len(dates),
	)
	return dates
}

func (ods *observableDayStore) LoadDay(ctx context.Context, date time.Time) (*types.TradingDay, bool) {
	ctx, span := trace.StartSpan(ctx, "tradestore.LoadDay")
	defer span.End()

	day, ok := ods.store.LoadDay(ctx, date)
	if !ok {
		logger.DebugSkip(ctx, 1, "No trading data for date",
			"date", date.Format("2006-01-02"),
		)
		return nil, false
	}

	logger.DebugSkip(ctx, 1, "Trading day served",
		"date", date.Format("2006-01-02"),
		"records", len(day.Records),
	)
	return day, true
}
