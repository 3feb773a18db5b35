package websearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	_ "github.com/joho/godotenv/autoload"

	"github.com/siddug/super-vibe/providers/tool"
)

// TestRun_UnknownAction verifies the dispatcher's total fallback.
func TestRun_UnknownAction(t *testing.T) {
	w := New(Config{})

	_, err := w.Run(context.Background(), Input{Action: "delete"})
	var unknown *UnknownActionError
	if !errors.As(err, &unknown) {
		t.Fatalf("Run() error = %v, want UnknownActionError", err)
	}
	if unknown.Action != "delete" {
		t.Errorf("unknown.Action = %q, want %q", unknown.Action, "delete")
	}
}

// TestNewWebSearchTool verifies the tool wrapper metadata.
func TestNewWebSearchTool(t *testing.T) {
	searchTool := NewWebSearchTool(DefaultConfig())

	if searchTool.Name != "WebSearch" {
		t.Errorf("Name = %q, want %q", searchTool.Name, "WebSearch")
	}
	if searchTool.Description == "" {
		t.Error("Description is empty")
	}
	if searchTool.Permission != tool.PermissionAlways {
		t.Errorf("Permission = %v, want PermissionAlways", searchTool.Permission)
	}
	if searchTool.Parameters == nil || searchTool.Output == nil {
		t.Error("derived schemas must not be nil")
	}
	if searchTool.Function == nil {
		t.Error("Function is nil")
	}
}

// TestToolCall_EndToEnd verifies the full Call path: lenient JSON input
// parsing, dispatch, and JSON output marshaling.
func TestToolCall_EndToEnd(t *testing.T) {
	server, _ := fakeSearxNG(t, http.StatusOK, threeHits)
	searchTool := NewWebSearchTool(Config{SearxNGURL: server.URL})

	// Single-quoted JSON exercises the repair path of the input parser.
	raw, err := searchTool.Call(context.Background(), `{'action': 'search', 'query': 'golang', 'num_results': 2}`)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	var out Output
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("Call() returned invalid JSON: %v", err)
	}
	if out.Action != ActionSearch || !out.Success {
		t.Errorf("Output meta = {%s %v}, want {search true}", out.Action, out.Success)
	}
	if len(out.Results) != 2 {
		t.Errorf("len(Results) = %d, want 2", len(out.Results))
	}
}

// TestToolCall_ErrorReturn verifies that handler failures surface as errors
// from Call, never as partial results.
func TestToolCall_ErrorReturn(t *testing.T) {
	searchTool := NewWebSearchTool(DefaultConfig())

	raw, err := searchTool.Call(context.Background(), `{"action": "search"}`)
	if err == nil {
		t.Fatalf("Call() = %q, want an error for a missing query", raw)
	}
	var missing *MissingParameterError
	if !errors.As(err, &missing) {
		t.Errorf("Call() error = %v, want MissingParameterError", err)
	}
}

// TestConcurrentCalls verifies that concurrent calls with distinct args
// produce independent results: no state leaks between calls.
func TestConcurrentCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Echo the query back as the single hit's title.
		fmt.Fprintf(w, `{"results": [{"title": %q}]}`, r.URL.Query().Get("q"))
	}))
	t.Cleanup(server.Close)

	w := New(Config{SearxNGURL: server.URL})

	const calls = 16
	var wg sync.WaitGroup
	failures := make(chan string, calls)

	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			query := fmt.Sprintf("query-%d", i)
			out, err := w.Run(context.Background(), Input{Action: ActionSearch, Query: query})
			if err != nil {
				failures <- fmt.Sprintf("call %d: %v", i, err)
				return
			}
			if len(out.Results) != 1 || out.Results[0].Title != query {
				failures <- fmt.Sprintf("call %d: got results %+v, want title %q", i, out.Results, query)
			}
		}(i)
	}
	wg.Wait()
	close(failures)

	for failure := range failures {
		t.Error(failure)
	}
}
