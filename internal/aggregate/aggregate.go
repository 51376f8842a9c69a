package aggregate

import (
	"context"
	"sort"
	"strings"
	"time"

	"trading-assistant/internal/interfaces"
	"trading-assistant/internal/market"
	"trading-assistant/internal/types"
)

// Aggregator computes summary statistics over one trading day. It borrows
// read-only views from the day store and never mutates them.
type Aggregator struct {
	store interfaces.DayStore
}

func New(store interfaces.DayStore) *Aggregator {
	return &Aggregator{store: store}
}

// StockAggregate sums a single instrument's trades for a date. The market
// label is resolved from the code's suffix even when no rows match, so
// failure messages can still name the market.
func (a *Aggregator) StockAggregate(ctx context.Context, code string, date time.Time) types.StockAggregate {
	normalized := market.Normalize(code)
	agg := types.StockAggregate{
		StockCode: normalized,
		Market:    market.Lookup(normalized).Market,
		Date:      date,
	}

	day, ok := a.store.LoadDay(ctx, date)
	if !ok {
		return agg
	}

	var priceSum float64
	for _, r := range day.Records {
		if r.Instrument != normalized {
			continue
		}
		if agg.TradeCount == 0 {
			agg.HighPrice, agg.LowPrice = r.Price, r.Price
		} else {
			if r.Price > agg.HighPrice {
				agg.HighPrice = r.Price
			}
			if r.Price < agg.LowPrice {
				agg.LowPrice = r.Price
			}
		}
		agg.Notional += r.Notional
		agg.Quantity += r.Quantity
		priceSum += r.Price
		agg.TradeCount++
	}

	if agg.TradeCount == 0 {
		return agg
	}

	agg.Success = true
	// Unweighted mean of the price column, not notional/quantity.
	agg.AveragePrice = priceSum / float64(agg.TradeCount)
	agg.Volatility = agg.HighPrice - agg.LowPrice
	return agg
}

// MarketSummary groups a day's rows by market label.
func (a *Aggregator) MarketSummary(ctx context.Context, date time.Time) types.MarketSummary {
	summary := types.MarketSummary{Date: date}

	day, ok := a.store.LoadDay(ctx, date)
	if !ok {
		return summary
	}

	type group struct {
		notional, quantity, priceSum float64
		trades                       int
		instruments                  map[string]struct{}
	}
	groups := map[string]*group{}
	for _, r := range day.Records {
		g := groups[r.Market]
		if g == nil {
			g = &group{instruments: map[string]struct{}{}}
			groups[r.Market] = g
		}
		g.notional += r.Notional
		g.quantity += r.Quantity
		g.priceSum += r.Price
		g.trades++
		g.instruments[r.Instrument] = struct{}{}
	}

	for label, g := range groups {
		summary.Breakdown = append(summary.Breakdown, types.MarketBreakdown{
			Market:       label,
			Notional:     g.notional,
			Quantity:     g.quantity,
			UniqueStocks: len(g.instruments),
			TradeCount:   g.trades,
			AveragePrice: g.priceSum / float64(g.trades),
		})
		summary.TotalNotional += g.notional
	}
	sort.Slice(summary.Breakdown, func(i, j int) bool {
		return summary.Breakdown[i].Notional > summary.Breakdown[j].Notional
	})

	summary.Success = true
	summary.TotalMarkets = len(summary.Breakdown)
	return summary
}

// StocksByMarketSuffix aggregates every instrument whose code ends with the
// given market suffix, descending by total notional.
func (a *Aggregator) StocksByMarketSuffix(ctx context.Context, suffix string, date time.Time) []types.StockListing {
	day, ok := a.store.LoadDay(ctx, date)
	if !ok {
		return nil
	}

	upperSuffix := strings.ToUpper(suffix)
	type group struct {
		notional, quantity, priceSum float64
		trades                       int
	}
	groups := map[string]*group{}
	for _, r := range day.Records {
		if !strings.HasSuffix(r.Instrument, upperSuffix) {
			continue
		}
		g := groups[r.Instrument]
		if g == nil {
			g = &group{}
			groups[r.Instrument] = g
		}
		g.notional += r.Notional
		g.quantity += r.Quantity
		g.priceSum += r.Price
		g.trades++
	}

	listings := make([]types.StockListing, 0, len(groups))
	for code, g := range groups {
		listings = append(listings, types.StockListing{
			Code:         code,
			Market:       market.Lookup(code).Market,
			Notional:     g.notional,
			Quantity:     g.quantity,
			AveragePrice: g.priceSum / float64(g.trades),
			TradeCount:   g.trades,
		})
	}
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].Notional > listings[j].Notional
	})
	return listings
}

// AvailableStocks lists the distinct instruments traded on a date with
// their market info.
func (a *Aggregator) AvailableStocks(ctx context.Context, date time.Time) []types.StockInfo {
	day, ok := a.store.LoadDay(ctx, date)
	if !ok {
		return nil
	}

	seen := map[string]struct{}{}
	var stocks []types.StockInfo
	for _, r := range day.Records {
		if _, dup := seen[r.Instrument]; dup {
			continue
		}
		seen[r.Instrument] = struct{}{}
		info := market.Lookup(r.Instrument)
		stocks = append(stocks, types.StockInfo{
			Code:     r.Instrument,
			Market:   info.Market,
			BaseCode: info.BaseCode,
		})
	}
	sort.Slice(stocks, func(i, j int) bool { return stocks[i].Code < stocks[j].Code })
	return stocks
}
