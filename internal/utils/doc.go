// Package utils provides shared low-level helpers used throughout the
// super-vibe internals: response-body cleanup that never masks the primary
// error ([CloseWithLog]), string truncation for logs and previews
// ([TruncateString]), JSON rendering that is always safe to embed in log
// output ([JSONToString]), and the generic [Ptr] pointer helper.
package utils
