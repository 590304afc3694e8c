// internal/palette/importer.go
package palette

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const importItemSchema = `{
	"type": "object",
	"required": ["value"],
	"properties": {
		"value": {"type": "string"},
		"name": {"type": "string"}
	}
}`

var (
	arraySchema = gojsonschema.NewStringLoader(`{"type": "array", "items": ` + importItemSchema + `}`)
	mapSchema   = gojsonschema.NewStringLoader(`{"type": "object", "additionalProperties": ` + importItemSchema + `}`)
)

// ParseError reports an import payload that could not be read. The import
// that produced it created nothing.
type ParseError struct {
	Err     error
	Details []string
}

func (e *ParseError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("parse import: %v", e.Err)
	}
	return fmt.Sprintf("parse import: %v: %s", e.Err, strings.Join(e.Details, "; "))
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ImportItem is one color read from an import payload.
type ImportItem struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ParseImport reads a bulk color payload. The primary shape is an array:
//
//	[{"value": "#FF0000", "name": "red.500"}, {"value": "00FF00"}]
//
// A mapping whose values are items is also accepted; keys become names when
// an item has none and items are ordered by key:
//
//	{"red.500": {"value": "#FF0000"}}
//
// The first non-space character picks the shape. Unknown fields are ignored.
// Values are not checked as colors.
func ParseImport(payload string) ([]ImportItem, error) {
	data := bytes.TrimSpace([]byte(payload))
	if len(data) == 0 {
		return nil, &ParseError{Err: errors.New("payload is empty")}
	}

	switch data[0] {
	case '[':
		if err := validateShape(arraySchema, data); err != nil {
			return nil, err
		}
		var items []ImportItem
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, &ParseError{Err: err}
		}
		return items, nil

	case '{':
		if err := validateShape(mapSchema, data); err != nil {
			return nil, err
		}
		var byKey map[string]ImportItem
		if err := json.Unmarshal(data, &byKey); err != nil {
			return nil, &ParseError{Err: err}
		}
		keys := make([]string, 0, len(byKey))
		for key := range byKey {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		items := make([]ImportItem, 0, len(keys))
		for _, key := range keys {
			item := byKey[key]
			if item.Name == "" {
				item.Name = key
			}
			items = append(items, item)
		}
		return items, nil

	default:
		return nil, &ParseError{Err: errors.New("payload must be a JSON array or object")}
	}
}

func validateShape(schema gojsonschema.JSONLoader, data []byte) error {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &ParseError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, resultErr := range result.Errors() {
		details = append(details, resultErr.String())
	}
	return &ParseError{Err: errors.New("payload does not match import format"), Details: details}
}
