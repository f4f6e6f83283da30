package interfaces

import (
	"context"

	"tripwatch/internal/domain/entities"
)

// ISearchGateway abstracts the external web-search service used for price
// lookups (e.g. Tavily).
//
// Search is best-effort: an error or an empty SearchResult both mean the
// lookup failed and the caller falls back to a simulated quote. The call is
// read-only and safe to abandon on context cancellation.
type ISearchGateway interface {
	Search(ctx context.Context, query string, includeDomains []string) (entities.SearchResult, error)
}
