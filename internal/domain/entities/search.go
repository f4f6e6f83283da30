package entities

// SearchItem is one ranked result from the external search gateway.
type SearchItem struct {
	Title   string
	URL     string
	Snippet string
}

// SearchResult is the gateway's best-effort payload: an optional synthesized
// answer plus ranked results. Both empty means the lookup failed.
type SearchResult struct {
	Answer  string
	Results []SearchItem
}

// Usable reports whether the result carries any text worth extracting from.
func (r SearchResult) Usable() bool {
	return r.Answer != "" || len(r.Results) > 0
}
