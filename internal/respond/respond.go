package respond

import (
	"fmt"
	"strings"
	"time"

	"trading-assistant/internal/market"
	"trading-assistant/internal/types"
)

// FormatCurrency renders a monetary amount with the market's symbol,
// abbreviating large values (B/M/K).
func FormatCurrency(amount float64, symbol string) string {
	switch {
	case amount >= 1_000_000_000:
		return fmt.Sprintf("%s%.2fB", symbol, amount/1_000_000_000)
	case amount >= 1_000_000:
		return fmt.Sprintf("%s%.2fM", symbol, amount/1_000_000)
	case amount >= 1_000:
		return fmt.Sprintf("%s%.1fK", symbol, amount/1_000)
	default:
		return symbol + groupThousands(fmt.Sprintf("%.2f", amount))
	}
}

// FormatCount renders a plain count with thousands separators, no decimals.
func FormatCount(n float64) string {
	return groupThousands(fmt.Sprintf("%.0f", n))
}

// groupThousands inserts commas into the integer part of a formatted number.
func groupThousands(s string) string {
	intPart, frac, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if neg {
		out = "-" + out
	}
	if frac != "" {
		out += "." + frac
	}
	return out
}

func fmtDate(d time.Time) string {
	return d.Format("2006-01-02")
}

func Greeting() string {
	return "👋 Hello! I'm your international stock trading assistant. I can help you analyze trading data from daily trade logs for stocks across multiple markets including Hong Kong, Korea, China, Japan, Australia, Thailand, Malaysia, India, and more!"
}

func Help() string {
	return `🤖 How I can help you:

Stock Information (All Markets):
• What's the notional traded for 005930.KS today?
• Show me trading volume for 600036.SS yesterday
• What was the average price for 7203.T?
• Trading data for AAPL.US

Market Information:
• Show me Korean market summary
• What Chinese stocks do you have?
• Market overview for today
• All Japanese stocks

Date Queries:
• What trading data do you have available?
• Show me trades from 2025-10-25
• Last week's trading summary

Supported Markets:
• Hong Kong: .HK (0148.HK)
• Korea: .KS (KOSPI), .KQ (KOSDAQ)
• China: .SS/.SH (Shanghai), .SZ/.ZK (Shenzhen)
• Japan: .T/.TO (Tokyo)
• Australia: .AX
• Thailand: .BK/.TB
• Malaysia: .KL
• India: .NS/.BO
• And many more...

Try asking me about any international stock! 🌍`
}

// Notional renders the full trading summary for a stock aggregate.
func Notional(agg types.StockAggregate) string {
	if !agg.Success {
		return stockNotFound(agg)
	}
	currency := market.CurrencySymbol(agg.Market)

	var b strings.Builder
	fmt.Fprintf(&b, "🌍 Trading Summary for %s (%s) on %s\n\n", agg.StockCode, agg.Market, fmtDate(agg.Date))
	fmt.Fprintf(&b, "I found %d trades for %s on %s.\n\n", agg.TradeCount, agg.StockCode, fmtDate(agg.Date))
	fmt.Fprintf(&b, "• Total Notional Value: %s\n", FormatCurrency(agg.Notional, currency))
	fmt.Fprintf(&b, "• Total Shares Traded: %s shares\n", FormatCount(agg.Quantity))
	fmt.Fprintf(&b, "• Average Price per Share: %s%.2f\n", currency, agg.AveragePrice)
	fmt.Fprintf(&b, "• Price Range: %s%.2f - %s%.2f\n", currency, agg.LowPrice, currency, agg.HighPrice)
	if agg.TradeCount > 1 {
		avgTradeSize := agg.Quantity / float64(agg.TradeCount)
		fmt.Fprintf(&b, "• Average Trade Size: %s shares per trade\n", FormatCount(avgTradeSize))
	}
	return b.String()
}

// Volume renders the volume-focused view of a stock aggregate.
func Volume(agg types.StockAggregate) string {
	if !agg.Success {
		return stockNotFound(agg)
	}
	currency := market.CurrencySymbol(agg.Market)

	var b strings.Builder
	fmt.Fprintf(&b, "📈 Trading Volume for %s (%s) on %s\n\n", agg.StockCode, agg.Market, fmtDate(agg.Date))
	fmt.Fprintf(&b, "• Total Shares Traded: %s shares\n", FormatCount(agg.Quantity))
	fmt.Fprintf(&b, "• Number of Trades: %d\n", agg.TradeCount)
	avgTradeSize := agg.Quantity / float64(agg.TradeCount)
	fmt.Fprintf(&b, "• Average Trade Size: %s shares per trade\n", FormatCount(avgTradeSize))
	fmt.Fprintf(&b, "• Total Notional Value: %s", FormatCurrency(agg.Notional, currency))
	return b.String()
}

// Price renders the price-focused view of a stock aggregate.
func Price(agg types.StockAggregate) string {
	if !agg.Success {
		return stockNotFound(agg)
	}
	currency := market.CurrencySymbol(agg.Market)

	var b strings.Builder
	fmt.Fprintf(&b, "💰 Price Information for %s (%s) on %s\n\n", agg.StockCode, agg.Market, fmtDate(agg.Date))
	fmt.Fprintf(&b, "• Average Trade Price: %s%.2f\n", currency, agg.AveragePrice)
	fmt.Fprintf(&b, "• Daily Range: %s%.2f - %s%.2f\n", currency, agg.LowPrice, currency, agg.HighPrice)
	fmt.Fprintf(&b, "• Price Volatility: %s%.2f\n", currency, agg.Volatility)
	fmt.Fprintf(&b, "• Total Shares Traded: %s shares\n", FormatCount(agg.Quantity))
	fmt.Fprintf(&b, "• Total Value Traded: %s", FormatCurrency(agg.Notional, currency))
	return b.String()
}

func stockNotFound(agg types.StockAggregate) string {
	return fmt.Sprintf("❌ I couldn't find any trading data for %s (%s) on %s. Please check if the stock code and date are correct, and ensure we have data for that date.",
		agg.StockCode, agg.Market, fmtDate(agg.Date))
}

// MarketListing ranks a market's stocks by notional, capped at topN rows.
// An empty listing still renders a response; the market query itself
// succeeds with zero results.
func MarketListing(marketName string, listings []types.StockListing, date time.Time, topN int) string {
	if len(listings) == 0 {
		return fmt.Sprintf("❌ No %s stocks found in the trading data for %s.", marketName, fmtDate(date))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏢 %s Market Stocks on %s\n\n", titleCase(marketName), fmtDate(date))
	for i, s := range listings {
		if i >= topN {
			break
		}
		currency := market.CurrencySymbol(s.Market)
		fmt.Fprintf(&b, "%d. %s: %s (%d trades)\n", i+1, s.Code, FormatCurrency(s.Notional, currency), s.TradeCount)
	}
	if len(listings) > topN {
		fmt.Fprintf(&b, "\n... and %d more stocks", len(listings)-topN)
	}
	return b.String()
}

// NoMarketSpecified asks the user to name a market.
func NoMarketSpecified() string {
	return "🤔 I understand you're asking about a specific market. Please specify which market you're interested in (e.g., Korean stocks, Chinese market, Japanese stocks)."
}

// Summary renders the all-markets breakdown for one date.
func Summary(s types.MarketSummary) string {
	if !s.Success {
		return fmt.Sprintf("❌ No market summary data available for %s.", fmtDate(s.Date))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Market Trading Summary for %s\n\n", fmtDate(s.Date))
	fmt.Fprintf(&b, "Total Markets: %d\n", s.TotalMarkets)
	fmt.Fprintf(&b, "Total Notional: %s\n\n", FormatCurrency(s.TotalNotional, "$"))
	for _, m := range s.Breakdown {
		currency := market.CurrencySymbol(m.Market)
		fmt.Fprintf(&b, "• %s:\n", m.Market)
		fmt.Fprintf(&b, "  Notional: %s\n", FormatCurrency(m.Notional, currency))
		fmt.Fprintf(&b, "  Stocks: %d\n", m.UniqueStocks)
		fmt.Fprintf(&b, "  Trades: %d\n", m.TradeCount)
		fmt.Fprintf(&b, "  Volume: %s shares\n\n", FormatCount(m.Quantity))
	}
	return b.String()
}

// Dates lists the available trading dates with weekday names.
func Dates(dates []time.Time) string {
	if len(dates) == 0 {
		return "❌ I don't have any trading data files available at the moment. Please make sure CSV files are placed in the data folder with the correct naming format."
	}

	var b strings.Builder
	b.WriteString("📅 Available Trading Dates\n\nI have trading data for the following dates:\n\n")
	for _, d := range dates {
		fmt.Fprintf(&b, "• %s (%s)\n", fmtDate(d), d.Weekday())
	}
	b.WriteString("\nYou can ask me about specific stocks or markets on any of these dates!")
	return b.String()
}

// Clarification asks for a stock code when an intent needs one.
func Clarification() string {
	return "🤔 I understand you're asking about trading data, but I need to know which stock you're interested in. Please specify a stock code like '005930.KS', '600036.SS', or '7203.T'."
}

// General is the catch-all response for unclassified queries.
func General() string {
	return `🌍 I'm your international stock trading data assistant! I can help you analyze trading information from daily trade logs across global markets.

Here's what I can do for you:
• Tell you the notional amount traded for specific stocks worldwide
• Show trading volumes and quantities for any market
• Provide price information with local currency symbols
• Analyze data for different dates and markets
• Give market summaries and overviews

Supported Markets:
• Hong Kong, Korea, China, Japan, Australia
• Thailand, Malaysia, India, Singapore, Taiwan
• Indonesia, Philippines, Vietnam, and more!

Try asking me something like:
• "What was the notional for 005930.KS yesterday?"
• "Show me Korean market summary"
• "Price information for 600036.SS"
• "All Japanese stocks today"

What would you like to know? 📊`
}

// Apology is the recovery-boundary response for unexpected failures.
func Apology() string {
	return "😔 Sorry, something went wrong while processing your question. Please try rephrasing it."
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
