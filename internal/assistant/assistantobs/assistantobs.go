package assistantobs

import (
	"context"

	"trading-assistant/internal/interfaces"
	"trading-assistant/internal/logger"
	"trading-assistant/internal/trace"
	"trading-assistant/internal/types"
)

type observableAssistant struct {
	assistant interfaces.Assistant
}

var _ interfaces.Assistant = (*observableAssistant)(nil)

func Wrap(assistant interfaces.Assistant) interfaces.Assistant {
	return &observableAssistant{assistant: assistant}
}

func (oa *observableAssistant) ProcessQuery(ctx context.Context, text string) types.QueryResult {
	ctx, span := trace.StartSpan(ctx, "assistant.ProcessQuery")
	defer span.End()

	timer := logger.StartOperation(ctx, "process-query", "query_len", len(text))
	result := oa.assistant.ProcessQuery(timer.GetContext(), text)
	timer.End("intent", result.Intent, "success", result.Success)

	logger.InfoSkip(ctx, 1, "Query processed",
		"intent", result.Intent,
		"success", result.Success,
		"stock_code", result.StockCode,
	)
	return result
}
