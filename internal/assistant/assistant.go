package assistant

import (
	"context"
	"fmt"
	"sort"

	"trading-assistant/internal/aggregate"
	"trading-assistant/internal/analyzer"
	"trading-assistant/internal/dateparse"
	"trading-assistant/internal/interfaces"
	"trading-assistant/internal/logger"
	"trading-assistant/internal/market"
	"trading-assistant/internal/respond"
	"trading-assistant/internal/types"
)

// Assistant answers free-text questions about daily trade logs. Intent
// classification and date resolution are independent; aggregation pulls
// from one shared day store.
type Assistant struct {
	store     interfaces.DayStore
	agg       *aggregate.Aggregator
	topStocks int
}

var _ interfaces.Assistant = (*Assistant)(nil)

func New(store interfaces.DayStore, topStocks int) *Assistant {
	return &Assistant{
		store:     store,
		agg:       aggregate.New(store),
		topStocks: topStocks,
	}
}

// ProcessQuery is the sole boundary UI collaborators call. It never
// panics outward: any unexpected failure resolves to a generic apology
// with Success=false.
func (a *Assistant) ProcessQuery(ctx context.Context, text string) (result types.QueryResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "Query processing panicked", "panic", fmt.Sprint(r), "query", text)
			result = types.QueryResult{Success: false, Response: respond.Apology()}
		}
	}()

	stockCode := analyzer.ExtractStockCode(text)
	queryDate := dateparse.Resolve(text)
	intent := analyzer.ClassifyIntent(text)

	logger.Info(ctx, "Processing query",
		"intent", intent,
		"stock_code", stockCode,
		"query_date", queryDate.Format("2006-01-02"),
	)

	switch intent {
	case analyzer.IntentNotional, analyzer.IntentVolume, analyzer.IntentPrice:
		if stockCode == "" {
			return types.QueryResult{
				Success:  false,
				Response: respond.Clarification(),
				Intent:   intent,
			}
		}

		agg := a.agg.StockAggregate(ctx, stockCode, queryDate)
		result := types.QueryResult{
			Success:   agg.Success,
			Intent:    intent,
			StockCode: agg.StockCode,
			Market:    agg.Market,
			QueryDate: queryDate.Format("2006-01-02"),
		}
		switch intent {
		case analyzer.IntentNotional:
			result.Response = respond.Notional(agg)
			result.NotionalAmount = agg.Notional
		case analyzer.IntentVolume:
			result.Response = respond.Volume(agg)
		default:
			result.Response = respond.Price(agg)
		}
		return result

	case analyzer.IntentMarket:
		// The whole query is scanned for a market-name token; an extracted
		// "stock code" that fails validation is just such a token.
		name, suffixes, ok := market.SuffixesForMarketName(text)
		if !ok {
			return types.QueryResult{
				Success:   true,
				Response:  respond.NoMarketSpecified(),
				Intent:    intent,
				QueryDate: queryDate.Format("2006-01-02"),
			}
		}

		var listings []types.StockListing
		for _, sfx := range suffixes {
			listings = append(listings, a.agg.StocksByMarketSuffix(ctx, sfx, queryDate)...)
		}
		sort.Slice(listings, func(i, j int) bool {
			return listings[i].Notional > listings[j].Notional
		})
		// A market query succeeds even with zero matching stocks.
		return types.QueryResult{
			Success:   true,
			Response:  respond.MarketListing(name, listings, queryDate, a.topStocks),
			Intent:    intent,
			QueryDate: queryDate.Format("2006-01-02"),
		}

	case analyzer.IntentSummary:
		summary := a.agg.MarketSummary(ctx, queryDate)
		return types.QueryResult{
			Success:   summary.Success,
			Response:  respond.Summary(summary),
			Intent:    intent,
			QueryDate: queryDate.Format("2006-01-02"),
		}

	case analyzer.IntentDate:
		dates := a.store.AvailableDates(ctx)
		return types.QueryResult{
			Success:  true,
			Response: respond.Dates(dates),
			Intent:   intent,
		}

	case analyzer.IntentGreeting:
		return types.QueryResult{Success: true, Response: respond.Greeting(), Intent: intent}

	case analyzer.IntentHelp:
		return types.QueryResult{Success: true, Response: respond.Help(), Intent: intent}

	default:
		return types.QueryResult{
			Success:   true,
			Response:  respond.General(),
			Intent:    intent,
			StockCode: stockCode,
			QueryDate: queryDate.Format("2006-01-02"),
		}
	}
}
