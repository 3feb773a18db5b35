package websearch

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/siddug/super-vibe/internal/utils"
)

// searxngResponse models the relevant portion of the SearXNG JSON response.
// Any field may be absent; absent strings stay empty.
type searxngResponse struct {
	Results []searxngHit `json:"results"`
}

type searxngHit struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
	Engine  string `json:"engine"`
}

// search performs a keyword search against the configured SearXNG instance.
// It issues exactly one GET to /search, always requesting the first result
// page in JSON format, and maps the aggregator's hits in their original order.
func (w *WebSearch) search(ctx context.Context, in Input) (Output, error) {
	// Only the empty string counts as missing; anything else, whitespace
	// included, is forwarded verbatim and left to the aggregator.
	if in.Query == "" {
		return Output{}, &MissingParameterError{Param: "query", Action: ActionSearch}
	}

	numResults := in.NumResults
	if numResults <= 0 {
		numResults = w.config.MaxResults
	}

	categories := "general"
	if len(in.Categories) > 0 {
		categories = strings.Join(in.Categories, ",")
	}

	language := in.Language
	if language == "" {
		language = "en"
	}

	safesearch := 0
	if in.SafeSearch != nil {
		safesearch = *in.SafeSearch
	}

	params := url.Values{}
	params.Set("q", in.Query)
	params.Set("format", "json")
	params.Set("categories", categories)
	params.Set("pageno", "1")
	params.Set("language", language)
	params.Set("safesearch", strconv.Itoa(safesearch))

	searchURL := strings.TrimRight(w.config.SearxNGURL, "/") + "/search?" + params.Encode()

	ctx, cancel := context.WithTimeout(ctx, w.config.DefaultTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return Output{}, &NetworkError{Op: ActionSearch, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := w.newClient().Do(req)
	if err != nil {
		return Output{}, w.classifyTransportError(ActionSearch, err)
	}
	defer utils.CloseWithLog(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Output{}, &StatusError{Op: ActionSearch, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Output{}, w.classifyTransportError(ActionSearch, err)
	}

	var data searxngResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return Output{}, &ParseError{Err: err}
	}

	// The aggregator's ranking is authoritative: take hits in order, up to
	// the requested count.
	results := make([]SearchResult, 0, numResults)
	for _, hit := range data.Results {
		if len(results) >= numResults {
			break
		}
		results = append(results, SearchResult{
			Title:   hit.Title,
			URL:     hit.URL,
			Snippet: hit.Content,
			Engine:  hit.Engine,
		})
	}

	slog.Debug("web search completed", "query", in.Query, "results", len(results))

	return Output{
		Action:  ActionSearch,
		Success: true,
		Results: results,
	}, nil
}
