package analyzer

import (
	"regexp"
	"strings"

	"trading-assistant/internal/market"
)

// Intent tags, from most to least specific.
const (
	IntentNotional = "notional_query"
	IntentVolume   = "volume_query"
	IntentPrice    = "price_query"
	IntentMarket   = "market_query"
	IntentDate     = "date_query"
	IntentSummary  = "summary_query"
	IntentGreeting = "greeting"
	IntentHelp     = "help"
	IntentGeneral  = "general_query"
)

// intentRule pairs an intent tag with its keyword set. Rules run in order;
// the first set with any substring hit wins, so a query containing both
// "notional" and "price" classifies as notional_query.
type intentRule struct {
	Intent   string
	Keywords []string
}

var intentRules = []intentRule{
	{IntentNotional, []string{
		"notional", "traded amount", "trading value", "amount traded",
		"total value", "trade value", "how much was traded",
		"what is the notional", "trading volume in value", "value traded",
	}},
	{IntentVolume, []string{
		"volume", "trading volume", "shares traded", "quantity",
		"how many shares", "number of shares", "share volume", "volume traded",
	}},
	{IntentPrice, []string{
		"price", "current price", "stock price", "how much", "cost",
		"what price", "price level", "trading price", "average price",
	}},
	{IntentMarket, []string{
		"market", "markets", "korea", "korean", "china", "chinese",
		"japan", "japanese", "australia", "australian", "thai", "thailand",
		"malaysia", "malaysian", "india", "indian", "hong kong",
		"shanghai", "shenzhen", "kospi", "kosdaq", "asx", "set",
	}},
	{IntentDate, []string{
		"yesterday", "today", "date", "available dates", "what data",
		"which dates", "last week", "this week",
	}},
	{IntentSummary, []string{
		"summary", "overview", "all markets", "market summary",
		"trading summary", "daily summary",
	}},
	{IntentGreeting, []string{"hello", "hi", "hey", "greetings"}},
	{IntentHelp, []string{"help", "what can you do", "how to use", "supported"}},
}

var codePatterns []*regexp.Regexp

func init() {
	suffixAlt := strings.Join(market.KnownSuffixes(), "|")
	codePatterns = []*regexp.Regexp{
		// Numeric code with a known market suffix: 005930.KS
		regexp.MustCompile(`(?i)(\d{4,6}\.(?:` + suffixAlt + `))`),
		// Alphabetic ticker with a known market suffix: AAPL.US
		regexp.MustCompile(`(?i)([A-Z]{1,5}\.(?:` + suffixAlt + `))`),
		regexp.MustCompile(`(?i)stock\s+(\S+\.\S{2,6})`),
		regexp.MustCompile(`(?i)for\s+(\S+\.\S{2,6})`),
		// Bare word.word, last resort.
		regexp.MustCompile(`(?i)(\S+\.\S{2,6})`),
	}
}

// ExtractStockCode pulls a candidate stock code out of free text. Each
// pattern's match is validated against the market registry; the first valid
// match wins. Returns "" when nothing validates.
func ExtractStockCode(text string) string {
	for _, p := range codePatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if candidate := m[1]; market.IsValidCode(candidate) {
			return candidate
		}
	}
	return ""
}

// ClassifyIntent tags a query with its purpose. Unclassifiable text is
// always general_query, never an error.
func ClassifyIntent(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range intentRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Intent
			}
		}
	}
	return IntentGeneral
}
