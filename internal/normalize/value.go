// Package normalize turns the backend's loosely-typed rows into typed models.
//
// The backend has renamed several columns over time and older rows still carry
// the previous spelling, so each logical field is read through an ordered
// alias list: the first key holding a non-empty value wins.
package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Stringify renders a decoded JSON value as display text. nil, empty strings
// and false are treated as absent and yield "".
func Stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case bool:
		if val {
			return "true"
		}
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}

// First returns the first non-empty value among keys, in order
func First(row map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value := Stringify(row[key]); value != "" {
			return value
		}
	}
	return ""
}

// Truthy interprets backend flag columns ("Yes", "1", "true", "AC", 1, true)
func Truthy(v interface{}) bool {
	switch strings.ToLower(Stringify(v)) {
	case "1", "y", "yes", "true", "ac", "on":
		return true
	default:
		return false
	}
}

// AsRow returns v as a field map when it decoded from a JSON object
func AsRow(v interface{}) (map[string]interface{}, bool) {
	switch row := v.(type) {
	case map[string]interface{}:
		return row, true
	default:
		return nil, false
	}
}

// AsRows returns the JSON objects contained in v, skipping anything else
func AsRows(v interface{}) []map[string]interface{} {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	rows := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if row, ok := AsRow(item); ok {
			rows = append(rows, row)
		}
	}
	return rows
}
