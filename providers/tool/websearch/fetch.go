package websearch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/siddug/super-vibe/internal/utils"
)

// truncationMarker is appended after a blank line when fetched content
// exceeds the configured budget.
const truncationMarker = "\n\n[Content truncated...]"

// fetch retrieves a web page and converts it to readable text. Redirects are
// followed transparently; the returned Output echoes the originally requested
// URL, not the redirect-resolved one, since downstream consumers rely on the
// echo.
func (w *WebSearch) fetch(ctx context.Context, in Input) (Output, error) {
	if in.URL == "" {
		return Output{}, &MissingParameterError{Param: "url", Action: ActionFetch}
	}

	parsed, err := url.Parse(in.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Output{}, &InvalidURLError{URL: in.URL}
	}

	ctx, cancel := context.WithTimeout(ctx, w.config.DefaultTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, in.URL, nil)
	if err != nil {
		return Output{}, &InvalidURLError{URL: in.URL}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := w.newClient().Do(req)
	if err != nil {
		return Output{}, w.classifyTransportError(ActionFetch, err)
	}
	defer utils.CloseWithLog(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Output{}, &StatusError{Op: ActionFetch, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Output{}, w.classifyTransportError(ActionFetch, err)
	}

	content, err := w.renderContent(resp, body)
	if err != nil {
		return Output{}, err
	}

	slog.Debug("web fetch completed", "url", in.URL, "status", resp.StatusCode, "content_chars", len(content))

	return Output{
		Action:  ActionFetch,
		Success: true,
		Content: content,
		URL:     in.URL,
	}, nil
}

// renderContent turns a response body into the tool's textual output based on
// the Content-Type header.
func (w *WebSearch) renderContent(resp *http.Response, body []byte) (string, error) {
	contentType := resp.Header.Get("Content-Type")
	budget := w.config.MaxContentLength

	switch {
	case strings.Contains(contentType, "text/html"):
		// The converter gets the final resolved URL so it can resolve
		// relative links; strategies may ignore it.
		text, err := w.converter.Convert(string(body), resp.Request.URL.String())
		if err != nil {
			return "", fmt.Errorf("failed to convert HTML content: %w", err)
		}
		return truncateContent(text, budget), nil

	case strings.Contains(contentType, "application/json"):
		// The raw body is truncated before wrapping so the fence markers
		// always survive; the fenced block is final as-is.
		raw := string(body)
		if runes := []rune(raw); len(runes) > budget {
			raw = string(runes[:budget])
		}
		return "```json\n" + raw + "\n```", nil

	case strings.HasPrefix(contentType, "text/"):
		return truncateContent(string(body), budget), nil

	default:
		return fmt.Sprintf("[Binary content: %s]", contentType), nil
	}
}

// truncateContent cuts text to at most budget characters and appends the
// truncation marker when anything was dropped. The budget counts runes, not
// bytes, so multibyte text is never cut mid-character.
func truncateContent(text string, budget int) string {
	runes := []rune(text)
	if len(runes) <= budget {
		return text
	}
	return string(runes[:budget]) + truncationMarker
}
