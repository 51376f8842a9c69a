package interfaces

import (
	"context"

	"trading-assistant/internal/types"
)

// Assistant answers natural-language questions about trade logs. It must
// never panic outward; all failures resolve to Success=false plus a
// user-facing message.
type Assistant interface {
	ProcessQuery(ctx context.Context, text string) types.QueryResult
}
