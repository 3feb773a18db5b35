package utils

import (
	"io"
	"log/slog"
)

// CloseWithLog closes c and logs a warning when the close fails. It exists so
// that deferred response-body closes never override the primary error of the
// surrounding function.
//
//	defer utils.CloseWithLog(resp.Body)
func CloseWithLog(c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Warn("failed to close resource", "error", err.Error())
	}
}
