package assistant

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-assistant/internal/analyzer"
	"trading-assistant/internal/tradestore"
)

const header = "Timestamp;ClientName;AccountName;Instrument;Quantity;Price\n"

func newTestAssistant(t *testing.T) *Assistant {
	t.Helper()
	dir := t.TempDir()
	content := header +
		"09:30:15.048448;ABC;ABC_account;0148.HK;10000;27.44\n" +
		"10:15:22.123456;XYZ;XYZ_invest;0148.HK;5000;27.50\n" +
		"11:30:45.789123;DEF;DEF_trading;0700.HK;2000;320.15\n" +
		"14:20:33.456789;GHI;GHI_fund;005930.KS;300;54000\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ClientExecution_20251025.csv"), []byte(content), 0o644))

	return New(tradestore.New(dir, "ClientExecution"), 10)
}

func TestProcessQueryNotional(t *testing.T) {
	a := newTestAssistant(t)

	result := a.ProcessQuery(context.Background(), "What is the notional for 0148.HK on 2025-10-25?")
	require.True(t, result.Success)
	assert.Equal(t, analyzer.IntentNotional, result.Intent)
	assert.Equal(t, "0148.HK", result.StockCode)
	assert.Equal(t, "Hong Kong", result.Market)
	assert.Equal(t, "2025-10-25", result.QueryDate)
	assert.InDelta(t, 10000*27.44+5000*27.50, result.NotionalAmount, 1e-6)
	assert.Contains(t, result.Response, "Trading Summary for 0148.HK")
}

func TestProcessQueryVolume(t *testing.T) {
	a := newTestAssistant(t)

	result := a.ProcessQuery(context.Background(), "How many shares traded for 0700.HK on 2025-10-25?")
	require.True(t, result.Success)
	assert.Equal(t, analyzer.IntentVolume, result.Intent)
	assert.Contains(t, result.Response, "Total Shares Traded: 2,000 shares")
}

func TestProcessQueryUnknownStock(t *testing.T) {
	a := newTestAssistant(t)

	result := a.ProcessQuery(context.Background(), "notional for 9999.KS on 2025-10-25")
	assert.False(t, result.Success)
	assert.Equal(t, "Korea (KOSPI)", result.Market)
	assert.Contains(t, result.Response, "couldn't find any trading data for 9999.KS")
}

func TestProcessQueryNoStockCode(t *testing.T) {
	a := newTestAssistant(t)

	result := a.ProcessQuery(context.Background(), "what is the notional traded")
	assert.False(t, result.Success)
	assert.Contains(t, result.Response, "which stock you're interested in")
}

func TestProcessQueryMarket(t *testing.T) {
	a := newTestAssistant(t)

	result := a.ProcessQuery(context.Background(), "Show me Hong Kong stocks on 2025-10-25")
	require.True(t, result.Success)
	assert.Equal(t, analyzer.IntentMarket, result.Intent)
	assert.Contains(t, result.Response, "1. 0700.HK")
	assert.Contains(t, result.Response, "2. 0148.HK")
}

func TestProcessQueryMarketNoRows(t *testing.T) {
	a := newTestAssistant(t)

	// The day exists but holds no Indian stocks; the market query itself
	// still succeeds with an empty listing.
	result := a.ProcessQuery(context.Background(), "Indian market stocks on 2025-10-25")
	assert.True(t, result.Success)
	assert.Contains(t, result.Response, "No indian stocks found")
}

func TestProcessQuerySummary(t *testing.T) {
	a := newTestAssistant(t)

	result := a.ProcessQuery(context.Background(), "trading summary for 2025-10-25")
	require.True(t, result.Success)
	assert.Equal(t, analyzer.IntentSummary, result.Intent)
	assert.Contains(t, result.Response, "Total Markets: 2")
}

func TestProcessQuerySummaryMissingDay(t *testing.T) {
	a := newTestAssistant(t)

	result := a.ProcessQuery(context.Background(), "trading summary for 2024-01-01")
	assert.False(t, result.Success)
	assert.Contains(t, result.Response, "No market summary data available")
}

func TestProcessQueryDates(t *testing.T) {
	a := newTestAssistant(t)

	result := a.ProcessQuery(context.Background(), "which dates do you have?")
	require.True(t, result.Success)
	assert.Equal(t, analyzer.IntentDate, result.Intent)
	assert.Contains(t, result.Response, "2025-10-25")
}

func TestProcessQueryGreetingAndHelp(t *testing.T) {
	a := newTestAssistant(t)

	greeting := a.ProcessQuery(context.Background(), "hello")
	assert.True(t, greeting.Success)
	assert.Equal(t, analyzer.IntentGreeting, greeting.Intent)

	help := a.ProcessQuery(context.Background(), "what can you do")
	assert.True(t, help.Success)
	assert.Equal(t, analyzer.IntentHelp, help.Intent)
}

func TestProcessQueryGeneralFallback(t *testing.T) {
	a := newTestAssistant(t)

	result := a.ProcessQuery(context.Background(), "tell me more")
	assert.True(t, result.Success)
	assert.Equal(t, analyzer.IntentGeneral, result.Intent)
}

func TestProcessQueryRecoversFromPanic(t *testing.T) {
	a := New(nil, 10) // nil store forces a panic inside aggregation

	result := a.ProcessQuery(context.Background(), "notional for 0148.HK")
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Response)
}
