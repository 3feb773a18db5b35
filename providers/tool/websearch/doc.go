// Package websearch provides a tool that searches the web through a
// self-hosted SearXNG instance and fetches web pages as readable text.
//
// The tool exposes two actions through a single entry point:
//
//   - "search": one GET against the instance's /search endpoint, returning
//     the aggregator's ranked hits as [SearchResult] values.
//   - "fetch": one GET against an arbitrary URL, converting HTML responses
//     to Markdown-ish text via a tiered converter chain and truncating the
//     output to a configurable budget.
//
// The main entry point is [NewWebSearchTool], which returns a ready-to-use
// [tool.Tool]; the underlying handlers are also reachable directly through
// [WebSearch.Run]. Each call issues exactly one outbound HTTP request with a
// per-call client; there are no retries, no caching, and no state shared
// between calls beyond the immutable [Config], so concurrent calls are safe.
package websearch
