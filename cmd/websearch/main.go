// Command websearch runs the WebSearch tool from the command line: one
// search or fetch operation per invocation, configured from the environment
// (and an optional .env file), with the JSON result printed to stdout.
//
// Usage:
//
//	websearch -action search -query "go generics"
//	websearch -action fetch -url https://go.dev/blog
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/siddug/super-vibe/internal/utils"
	"github.com/siddug/super-vibe/providers/tool"
	"github.com/siddug/super-vibe/providers/tool/websearch"
)

func main() {
	action := flag.String("action", websearch.ActionSearch, "operation to perform: search or fetch")
	query := flag.String("query", "", "search query (search action)")
	pageURL := flag.String("url", "", "URL to fetch (fetch action)")
	numResults := flag.Int("num-results", 0, "number of search results (0 = configured default)")
	language := flag.String("language", "", "language code for search results")
	traceCalls := flag.Bool("trace", false, "print tool-call spans to stdout")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	ctx := context.Background()

	if *traceCalls {
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			slog.Error("failed to create trace exporter", "error", err)
			os.Exit(1)
		}
		provider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
		otel.SetTracerProvider(provider)
		defer func() {
			_ = provider.Shutdown(ctx)
		}()
	}

	catalog := tool.NewCatalogWithTools(websearch.NewWebSearchTool(websearch.ConfigFromEnv()))
	searchTool, _ := catalog.Get("WebSearch")

	input := websearch.Input{
		Action:     *action,
		Query:      *query,
		URL:        *pageURL,
		NumResults: *numResults,
		Language:   *language,
	}
	rawInput, err := json.Marshal(input)
	if err != nil {
		slog.Error("failed to encode input", "error", err)
		os.Exit(1)
	}

	rawOutput, err := searchTool.Call(ctx, string(rawInput))
	if err != nil {
		slog.Error("tool call failed", "tool", "WebSearch", "error", err)
		os.Exit(1)
	}

	var out websearch.Output
	if err := json.Unmarshal([]byte(rawOutput), &out); err != nil {
		slog.Error("failed to decode output", "error", err)
		os.Exit(1)
	}
	fmt.Println(utils.JSONToString(out, true))
}
