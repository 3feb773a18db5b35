package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/invopop/jsonschema"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/siddug/super-vibe/core/parse"
	"github.com/siddug/super-vibe/internal/utils"
)

var tracer = otel.Tracer("github.com/siddug/super-vibe/providers/tool")

// Permission declares how a host framework should gate invocations of a tool.
// The gating itself is the host's responsibility; tools only advertise their
// level.
type Permission int

const (
	// PermissionAsk requires user confirmation before each invocation.
	PermissionAsk Permission = iota
	// PermissionAlways allows invocation without confirmation.
	PermissionAlways
	// PermissionNever disables the tool entirely.
	PermissionNever
)

// String returns the lowercase name of the permission level.
func (p Permission) String() string {
	switch p {
	case PermissionAlways:
		return "always"
	case PermissionNever:
		return "never"
	default:
		return "ask"
	}
}

// Tool represents a typed, callable tool. It binds a name, description, and
// permission level to a strongly-typed Go function, and automatically derives
// JSON schemas for both input (I) and output (O) via reflection.
// Use [NewTool] to construct a Tool; implement [GenericTool] for
// host-agnostic usage.
type Tool[I, O any] struct {
	Name        string
	Description string
	Permission  Permission
	Parameters  *jsonschema.Schema
	Output      *jsonschema.Schema
	Function    func(ctx context.Context, input I) (O, error)
}

// Info is the metadata a tool advertises to its host: the name and
// description surfaced to the language model, the parameter schema used for
// argument validation, and the permission level used for gating.
type Info struct {
	Name        string
	Description string
	Permission  Permission
	Parameters  *jsonschema.Schema
}

// GenericTool is the host-agnostic interface for all tools. It abstracts over
// the concrete generic type parameters of [Tool] so that tools can be stored,
// dispatched, and introspected without knowing their exact input/output types.
type GenericTool interface {
	// ToolInfo returns the metadata used to advertise this tool to a host.
	ToolInfo() Info

	// Call invokes the tool with a JSON-encoded input string and returns a
	// JSON-encoded output string. Returns an error if parsing or execution
	// fails.
	Call(ctx context.Context, inputJSON string) (string, error)
}

// funcToolOptions holds optional configuration for a tool created via [NewTool].
type funcToolOptions struct {
	Description string
	Permission  Permission
}

// WithDescription sets a human-readable description for the tool. Hosts
// surface this description to the language model to help it decide when and
// how to invoke the tool.
func WithDescription(description string) func(*funcToolOptions) {
	return func(o *funcToolOptions) {
		o.Description = description
	}
}

// WithPermission sets the permission level the tool advertises to its host.
// The default is [PermissionAsk].
func WithPermission(permission Permission) func(*funcToolOptions) {
	return func(o *funcToolOptions) {
		o.Permission = permission
	}
}

// NewTool constructs a new [Tool] with the given name and handler function.
// JSON schemas for the input type I and output type O are derived
// automatically via reflection.
//
// Example:
//
//	searchTool := tool.NewTool[Input, Output]("WebSearch", ws.Run,
//	    tool.WithDescription("Searches the web via SearXNG."),
//	    tool.WithPermission(tool.PermissionAlways),
//	)
func NewTool[I, O any](name string, function func(ctx context.Context, input I) (O, error), options ...func(*funcToolOptions)) *Tool[I, O] {
	toolOptions := &funcToolOptions{}
	for _, option := range options {
		option(toolOptions)
	}

	return &Tool[I, O]{
		Name:        name,
		Description: toolOptions.Description,
		Permission:  toolOptions.Permission,
		Parameters:  reflectSchema[I](),
		Output:      reflectSchema[O](),
		Function:    function,
	}
}

// reflectSchema derives the JSON schema of T. Schemas are inlined rather than
// referenced so hosts can forward them to model APIs verbatim.
func reflectSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
	}
	var v T
	return reflector.Reflect(&v)
}

// ToolInfo returns the [Info] used to advertise this tool to a host.
func (t *Tool[I, O]) ToolInfo() Info {
	return Info{
		Name:        t.Name,
		Description: t.Description,
		Permission:  t.Permission,
		Parameters:  t.Parameters,
	}
}

// Call invokes the tool's underlying function with the given JSON-encoded
// input. It leniently deserializes inputJSON into the tool's input type I,
// executes the function, and returns the result serialized as JSON. The whole
// execution is wrapped in a span named after the tool.
// Returns an error if input parsing, function execution, or output marshaling
// fails.
func (t *Tool[I, O]) Call(ctx context.Context, inputJSON string) (string, error) {
	ctx, span := tracer.Start(ctx, "tool."+t.Name, trace.WithAttributes(
		attribute.String("tool.name", t.Name),
		attribute.Int("tool.input.bytes", len(inputJSON)),
	))
	defer span.End()

	start := time.Now()

	parsedInput, err := parse.ParseStringAs[I](inputJSON)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "input parsing failed")
		return "", fmt.Errorf("tool %s: invalid input: %w\nInput preview: %s", t.Name, err, utils.TruncateString(inputJSON, 200))
	}

	output, err := t.Function(ctx, parsedInput)
	duration := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.Debug("tool call failed", "tool", t.Name, "duration", duration, "error", err)
		return "", err
	}

	outputBytes, err := json.Marshal(output)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "output marshaling failed")
		return "", fmt.Errorf("tool %s: failed to marshal output: %w", t.Name, err)
	}

	span.SetAttributes(
		attribute.Int("tool.output.bytes", len(outputBytes)),
		attribute.Int64("tool.duration_ms", duration.Milliseconds()),
	)
	span.SetStatus(codes.Ok, "")
	slog.Debug("tool call completed", "tool", t.Name, "duration", duration, "output_bytes", len(outputBytes))

	return string(outputBytes), nil
}
