package websearch

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/siddug/super-vibe/internal/htmltext"
	"github.com/siddug/super-vibe/providers/tool"
)

// Action values accepted by the dispatcher.
const (
	ActionSearch = "search"
	ActionFetch  = "fetch"
)

const (
	// userAgent identifies fetch requests to origin servers.
	userAgent = "Mozilla/5.0 (compatible; super-vibe/1.0; +https://github.com/siddug/super-vibe)"
	// maxBodySize caps response body reads (10MB).
	maxBodySize = 10 * 1024 * 1024
	// maxRedirects caps transparent redirect following on fetch.
	maxRedirects = 10
)

// Input is the tagged argument union of the tool: Action selects the
// operation and determines which of the optional fields are required.
// Action="search" requires Query; action="fetch" requires URL.
type Input struct {
	// Action selects the operation.
	Action string `json:"action" jsonschema:"enum=search,enum=fetch,description=Action to perform: 'search' for keyword search and 'fetch' to get page content"`

	// Query is the search query (required for the search action).
	Query string `json:"query,omitempty" jsonschema:"description=Search query (required for the search action)"`

	// URL is the page to fetch (required for the fetch action).
	URL string `json:"url,omitempty" jsonschema:"description=URL to fetch (required for the fetch action)"`

	// Categories are the SearXNG categories to search. Default is general.
	Categories []string `json:"categories,omitempty" jsonschema:"description=Search categories such as general or news or images. Default is general"`

	// NumResults overrides the configured maximum number of results.
	NumResults int `json:"num_results,omitempty" jsonschema:"description=Number of results to return (overrides the configured default)"`

	// Language is the language code for search results. Default is "en".
	Language string `json:"language,omitempty" jsonschema:"description=Language code for search results such as 'en' or 'fr'. Default is 'en'"`

	// SafeSearch is the safe-search level: 0=off, 1=moderate, 2=strict.
	// A nil value means the default (0).
	SafeSearch *int `json:"safesearch,omitempty" jsonschema:"description=Safe search level: 0=off 1=moderate 2=strict. Default is 0"`
}

// SearchResult is a single aggregator hit. Snippet and Engine default to the
// empty string when the aggregator omits them.
type SearchResult struct {
	Title   string `json:"title" jsonschema:"description=Title of the result"`
	URL     string `json:"url" jsonschema:"description=URL of the result"`
	Snippet string `json:"snippet" jsonschema:"description=Content snippet of the result"`
	Engine  string `json:"engine" jsonschema:"description=Engine that produced the result"`
}

// Output is the result of a search or fetch operation. Results is populated
// for search, Content and URL for fetch; failures are reported through the
// returned error, never through a partially-filled Output.
type Output struct {
	Action  string         `json:"action" jsonschema:"description=The action that was performed"`
	Success bool           `json:"success" jsonschema:"description=Whether the operation succeeded"`
	Results []SearchResult `json:"results,omitempty" jsonschema:"description=Search results (search action only)"`
	Content string         `json:"content,omitempty" jsonschema:"description=Page content (fetch action only)"`
	URL     string         `json:"url,omitempty" jsonschema:"description=The originally requested URL (fetch action only)"`
	Error   string         `json:"error,omitempty" jsonschema:"description=Error message when the host maps failures into results"`
}

// WebSearch holds the immutable per-tool state: configuration and the HTML
// converter strategy. All methods are safe for concurrent use.
type WebSearch struct {
	config    Config
	converter htmltext.Converter
}

// Option configures a [WebSearch].
type Option func(*WebSearch)

// WithConverter injects the HTML-to-text converter used by the fetch action.
// The default is [htmltext.DefaultChain]. Injecting a specific strategy lets
// tests force each tier deterministically.
func WithConverter(c htmltext.Converter) Option {
	return func(w *WebSearch) {
		w.converter = c
	}
}

// New creates a WebSearch with zero-valued config fields replaced by
// defaults.
func New(config Config, options ...Option) *WebSearch {
	w := &WebSearch{
		config:    config.withDefaults(),
		converter: htmltext.DefaultChain(),
	}
	for _, option := range options {
		option(w)
	}
	return w
}

// NewWebSearchTool returns a [tool.Tool] wrapping a [WebSearch] built from
// config. The tool advertises [tool.PermissionAlways], matching the host
// framework's always-allow gating for this tool.
//
// Example:
//
//	searchTool := websearch.NewWebSearchTool(websearch.ConfigFromEnv())
//	catalog := tool.NewCatalogWithTools(searchTool)
func NewWebSearchTool(config Config, options ...Option) *tool.Tool[Input, Output] {
	w := New(config, options...)
	return tool.NewTool[Input, Output](
		"WebSearch",
		w.Run,
		tool.WithDescription("Search the web using SearXNG or fetch and extract content from web pages. Use action='search' with a query to find relevant URLs. Use action='fetch' with a URL to retrieve and convert the page content to markdown. Supports parameters like language, safesearch, and categories for refined searches."),
		tool.WithPermission(tool.PermissionAlways),
	)
}

// Run dispatches to the search or fetch handler based on in.Action. Any other
// value fails with an [UnknownActionError].
func (w *WebSearch) Run(ctx context.Context, in Input) (Output, error) {
	switch in.Action {
	case ActionSearch:
		return w.search(ctx, in)
	case ActionFetch:
		return w.fetch(ctx, in)
	default:
		return Output{}, &UnknownActionError{Action: in.Action}
	}
}

// newClient builds the HTTP client for one call. Clients are per-call by
// design: no connection state outlives an operation.
func (w *WebSearch) newClient() *http.Client {
	return &http.Client{
		Timeout: w.config.DefaultTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("too many redirects (>%d)", maxRedirects)
			}
			return nil
		},
	}
}

// classifyTransportError maps a client.Do or body-read failure onto the
// tool's error variants: deadline overruns become [TimeoutError], caller
// cancellation propagates untouched, everything else is a [NetworkError].
// The net.Error check covers both url.Error from client.Do and the timeout
// error the client injects when the deadline fires mid-body-read.
func (w *WebSearch) classifyTransportError(op string, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Op: op, Timeout: w.config.DefaultTimeout}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Op: op, Timeout: w.config.DefaultTimeout}
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return &NetworkError{Op: op, Err: err}
}
