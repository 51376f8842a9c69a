package aggregate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-assistant/internal/types"
)

// fakeStore serves a fixed day regardless of cache or files.
type fakeStore struct {
	day *types.TradingDay
}

func (f *fakeStore) AvailableDates(ctx context.Context) []time.Time {
	if f.day == nil {
		return nil
	}
	return []time.Time{f.day.Date}
}

func (f *fakeStore) LoadDay(ctx context.Context, date time.Time) (*types.TradingDay, bool) {
	if f.day == nil || !f.day.Date.Equal(date) {
		return nil, false
	}
	return f.day, true
}

func rec(instrument string, qty, price float64) types.TradeRecord {
	return types.TradeRecord{
		Instrument: instrument,
		Quantity:   qty,
		Price:      price,
		Notional:   qty * price,
		Market:     marketFor(instrument),
	}
}

func marketFor(instrument string) string {
	switch {
	case hasSuffix(instrument, ".HK"):
		return "Hong Kong"
	case hasSuffix(instrument, ".KS"):
		return "Korea (KOSPI)"
	default:
		return "Unknown Market"
	}
}

func hasSuffix(s, sfx string) bool {
	return len(s) >= len(sfx) && s[len(s)-len(sfx):] == sfx
}

var testDate = time.Date(2025, 10, 25, 0, 0, 0, 0, time.UTC)

func newTestAggregator(records ...types.TradeRecord) *Aggregator {
	return New(&fakeStore{day: &types.TradingDay{Date: testDate, Records: records}})
}

func TestStockAggregate(t *testing.T) {
	agg := newTestAggregator(
		rec("AAA.HK", 100, 10),
		rec("AAA.HK", 200, 20),
		rec("BBB.HK", 50, 5),
	)

	// Query code is normalized before matching.
	got := agg.StockAggregate(context.Background(), "aaa.hk", testDate)
	require.True(t, got.Success)
	assert.Equal(t, "AAA.HK", got.StockCode)
	assert.Equal(t, "Hong Kong", got.Market)
	assert.InDelta(t, 5000.0, got.Notional, 1e-9)
	assert.InDelta(t, 300.0, got.Quantity, 1e-9)
	// Mean of the price column, not notional/quantity.
	assert.InDelta(t, 15.0, got.AveragePrice, 1e-9)
	assert.Equal(t, 20.0, got.HighPrice)
	assert.Equal(t, 10.0, got.LowPrice)
	assert.Equal(t, 10.0, got.Volatility)
	assert.Equal(t, 2, got.TradeCount)
}

func TestStockAggregateNoMatchingRows(t *testing.T) {
	agg := newTestAggregator(rec("AAA.HK", 100, 10))

	got := agg.StockAggregate(context.Background(), "005930.KS", testDate)
	assert.False(t, got.Success)
	// The market label is still resolved from the suffix.
	assert.Equal(t, "Korea (KOSPI)", got.Market)
	assert.Zero(t, got.TradeCount)
}

func TestStockAggregateMissingDay(t *testing.T) {
	agg := New(&fakeStore{})

	got := agg.StockAggregate(context.Background(), "0148.HK", testDate)
	assert.False(t, got.Success)
	assert.Equal(t, "Hong Kong", got.Market)
}

func TestMarketSummary(t *testing.T) {
	agg := newTestAggregator(
		rec("AAA.HK", 100, 10),   // 1000
		rec("BBB.HK", 200, 5),    // 1000
		rec("005930.KS", 10, 50), // 500
	)

	got := agg.MarketSummary(context.Background(), testDate)
	require.True(t, got.Success)
	assert.Equal(t, 2, got.TotalMarkets)
	assert.InDelta(t, 2500.0, got.TotalNotional, 1e-9)

	require.Len(t, got.Breakdown, 2)
	hk := got.Breakdown[0]
	assert.Equal(t, "Hong Kong", hk.Market)
	assert.InDelta(t, 2000.0, hk.Notional, 1e-9)
	assert.Equal(t, 2, hk.UniqueStocks)
	assert.Equal(t, 2, hk.TradeCount)
	assert.InDelta(t, 7.5, hk.AveragePrice, 1e-9)

	ks := got.Breakdown[1]
	assert.Equal(t, "Korea (KOSPI)", ks.Market)
	assert.InDelta(t, 500.0, ks.Notional, 1e-9)
}

func TestMarketSummaryMissingDay(t *testing.T) {
	agg := New(&fakeStore{})
	got := agg.MarketSummary(context.Background(), testDate)
	assert.False(t, got.Success)
}

func TestStocksByMarketSuffix(t *testing.T) {
	agg := newTestAggregator(
		rec("AAA.HK", 100, 10), // 1000
		rec("BBB.HK", 500, 10), // 5000
		rec("AAA.HK", 100, 12), // 1200
		rec("005930.KS", 10, 50),
	)

	got := agg.StocksByMarketSuffix(context.Background(), ".hk", testDate)
	require.Len(t, got, 2)
	// Descending by total notional.
	assert.Equal(t, "BBB.HK", got[0].Code)
	assert.InDelta(t, 5000.0, got[0].Notional, 1e-9)
	assert.Equal(t, "AAA.HK", got[1].Code)
	assert.InDelta(t, 2200.0, got[1].Notional, 1e-9)
	assert.Equal(t, 2, got[1].TradeCount)
	assert.InDelta(t, 11.0, got[1].AveragePrice, 1e-9)
}

func TestAvailableStocks(t *testing.T) {
	agg := newTestAggregator(
		rec("AAA.HK", 100, 10),
		rec("AAA.HK", 50, 11),
		rec("005930.KS", 10, 50),
	)

	got := agg.AvailableStocks(context.Background(), testDate)
	require.Len(t, got, 2)
	assert.Equal(t, "005930.KS", got[0].Code)
	assert.Equal(t, "005930", got[0].BaseCode)
	assert.Equal(t, "AAA.HK", got[1].Code)
}
