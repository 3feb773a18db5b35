package parse

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/kaptinlin/jsonrepair"
)

// ParseStringAs parses a string into the specified type T.
//
// Primitive targets (string, bool, integer, float) are converted directly via
// strconv, since models often return bare literals rather than JSON documents
// for scalar parameters. Everything else (structs, maps, slices) goes through
// JSON unmarshaling; when strict unmarshaling fails the content is repaired
// with jsonrepair and decoded again, which tolerates the usual LLM quirks
// such as single-quoted strings and unquoted object keys.
//
// Example:
//
//	args, err := parse.ParseStringAs[Input](`{action: 'search', query: "go"}`)
func ParseStringAs[T any](content string) (T, error) {
	var result T

	switch reflect.TypeFor[T]().Kind() {
	case reflect.String:
		reflect.ValueOf(&result).Elem().SetString(content)
		return result, nil

	case reflect.Bool:
		val, err := strconv.ParseBool(content)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as bool: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetBool(val)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(content, 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as int: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetInt(val)
		return result, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(content, 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as uint: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetUint(val)
		return result, nil

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(content, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as float: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetFloat(val)
		return result, nil

	default:
		return parseJSON[T](content)
	}
}

// parseJSON decodes content into T, repairing the JSON and retrying once when
// strict decoding fails.
func parseJSON[T any](content string) (T, error) {
	var result T

	strictErr := json.Unmarshal([]byte(content), &result)
	if strictErr == nil {
		return result, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(content)
	if repairErr != nil {
		return result, fmt.Errorf("failed to parse content as JSON: %w (repair also failed: %v)", strictErr, repairErr)
	}

	if err := json.Unmarshal([]byte(repaired), &result); err != nil {
		return result, fmt.Errorf("failed to parse repaired JSON: %w", err)
	}
	return result, nil
}
