package types

import "time"

type TradeRecord struct {
	Timestamp   string
	ClientName  string
	AccountName string
	Instrument  string
	Quantity    float64
	Price       float64
	Notional    float64
	Market      string
}

// TradingDay is the full set of trade rows sourced from one day's file.
// Records are immutable once loaded.
type TradingDay struct {
	Date    time.Time
	Source  string
	Records []TradeRecord
}

type StockAggregate struct {
	Success      bool
	StockCode    string
	Market       string
	Date         time.Time
	Notional     float64
	Quantity     float64
	AveragePrice float64
	HighPrice    float64
	LowPrice     float64
	Volatility   float64
	TradeCount   int
}

type MarketBreakdown struct {
	Market       string
	Notional     float64
	Quantity     float64
	UniqueStocks int
	TradeCount   int
	AveragePrice float64
}

type MarketSummary struct {
	Success       bool
	Date          time.Time
	TotalMarkets  int
	TotalNotional float64
	Breakdown     []MarketBreakdown
}

// StockListing is one row of a per-market stock ranking.
type StockListing struct {
	Code         string
	Market       string
	Notional     float64
	Quantity     float64
	AveragePrice float64
	TradeCount   int
}

type StockInfo struct {
	Code     string
	Market   string
	BaseCode string
}

// QueryResult is the sole boundary handed to UI collaborators.
type QueryResult struct {
	Success        bool    `json:"success"`
	Response       string  `json:"response"`
	Intent         string  `json:"intent"`
	StockCode      string  `json:"stock_code,omitempty"`
	Market         string  `json:"market,omitempty"`
	QueryDate      string  `json:"query_date,omitempty"`
	NotionalAmount float64 `json:"notional_amount,omitempty"`
}
