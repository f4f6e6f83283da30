package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"tripwatch/internal/domain/entities"
)

var ErrMissingTavilyAPIKey = errors.New("missing TAVILY_API_KEY")

const (
	defaultTavilyBaseURL = "https://api.tavily.com"

	// Caps on what we ask the gateway for; results beyond these add latency
	// without adding extractable prices.
	maxResults       = 5
	requestTimeout   = 10 * time.Second
	maxResponseBytes = 1 << 20
)

// TavilyGateway calls the Tavily web-search API.
//
// Mock mode (SEARCH_GATEWAY_MOCK) returns an empty result set so the service
// runs end-to-end without credentials; every quote then carries fallback
// provenance.

type TavilyGateway struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	mockMode   bool
}

func NewTavilyGateway(apiKey string) (*TavilyGateway, error) {
	if isSearchGatewayMockEnabled() {
		log.Printf("[search][gateway] mock mode enabled")
		return &TavilyGateway{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[search][gateway] missing TAVILY_API_KEY")
		return nil, ErrMissingTavilyAPIKey
	}

	baseURL := os.Getenv("TAVILY_BASE_URL")
	if baseURL == "" {
		baseURL = defaultTavilyBaseURL
	}

	log.Printf("[search][gateway] Tavily client initialized")
	return &TavilyGateway{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}, nil
}

type tavilySearchRequest struct {
	APIKey         string   `json:"api_key"`
	Query          string   `json:"query"`
	SearchDepth    string   `json:"search_depth"`
	IncludeAnswer  bool     `json:"include_answer"`
	IncludeDomains []string `json:"include_domains,omitempty"`
	MaxResults     int      `json:"max_results"`
}

type tavilySearchResponse struct {
	Answer  string `json:"answer"`
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

func (g *TavilyGateway) Search(ctx context.Context, query string, includeDomains []string) (entities.SearchResult, error) {
	if g != nil && g.mockMode {
		log.Printf("[search][gateway] mock search query_len=%d", len(query))
		return entities.SearchResult{}, nil
	}

	body, err := json.Marshal(tavilySearchRequest{
		APIKey:         g.apiKey,
		Query:          query,
		SearchDepth:    "basic",
		IncludeAnswer:  true,
		IncludeDomains: includeDomains,
		MaxResults:     maxResults,
	})
	if err != nil {
		return entities.SearchResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return entities.SearchResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[search][gateway] request failed err=%v", err)
		return entities.SearchResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[search][gateway] non-2xx status=%d", resp.StatusCode)
		return entities.SearchResult{}, fmt.Errorf("tavily search returned status %d", resp.StatusCode)
	}

	var payload tavilySearchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		log.Printf("[search][gateway] response decode failed err=%v", err)
		return entities.SearchResult{}, err
	}

	result := entities.SearchResult{Answer: payload.Answer}
	for _, item := range payload.Results {
		result.Results = append(result.Results, entities.SearchItem{
			Title:   item.Title,
			URL:     item.URL,
			Snippet: item.Content,
		})
	}
	log.Printf("[search][gateway] search ok answer_len=%d results=%d", len(result.Answer), len(result.Results))
	return result, nil
}

func isSearchGatewayMockEnabled() bool {
	for _, key := range []string{"SEARCH_GATEWAY_MOCK", "TAVILY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
