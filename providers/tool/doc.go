// Package tool provides the foundational types for defining and executing
// tools that can be invoked by AI language models.
//
// A tool wraps a typed Go function together with its name, description,
// permission level, and auto-derived JSON schemas, making it ready for
// registration with any host framework that dispatches tool calls. The main
// entry point for creating tools is [NewTool]; option functions
// [WithDescription] and [WithPermission] allow further configuration.
//
// Tool executions are wrapped in OpenTelemetry spans carrying the tool name,
// input and output sizes, and any error, so hosts that install a tracer
// provider get call-level visibility for free.
//
// The [Catalog] type offers a thread-safe registry for managing collections
// of tools; use [NewCatalog] or [NewCatalogWithTools] to create one.
package tool
