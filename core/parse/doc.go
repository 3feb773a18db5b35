// Package parse converts the raw strings produced by language models into
// strongly-typed Go values. Models frequently emit JSON that is almost but
// not quite valid (single quotes, unquoted keys, trailing commas), so the
// main entry point [ParseStringAs] first attempts strict decoding and then
// falls back to repairing the payload with the jsonrepair library before
// retrying.
package parse
