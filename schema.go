// Package funcschema generates and normalizes JSON Schema documents into
// the restricted dialect accepted by function-calling APIs: no refinement
// keywords, anyOf as the only combinator, closed objects, and every declared
// property required.
package funcschema

import (
	"encoding/json"
	"fmt"

	"github.com/lyricat/goutils/structs"
	"github.com/quailyquaily/funcschema/normalize"
)

// Schema is a normalized JSON Schema document. Value holds the decoded
// document; after construction it is not mutated again by this package.
type Schema struct {
	Value map[string]any
}

// FromValue wraps an externally produced schema document, normalizing it in
// place. The caller must not share doc for concurrent mutation.
func FromValue(doc map[string]any) *Schema {
	if doc == nil {
		doc = map[string]any{}
	}
	return &Schema{Value: normalize.Apply(doc)}
}

// FromJSON parses a schema document and normalizes it.
func FromJSON(data []byte) (*Schema, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return FromValue(doc), nil
}

// FromJSONMap wraps a goutils JSON map, normalizing it in place.
func FromJSONMap(doc structs.JSONMap) *Schema {
	return FromValue(map[string]any(doc))
}

// JSON serializes the document.
func (s *Schema) JSON() ([]byte, error) {
	return json.Marshal(s.Value)
}

func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Value)
}

// Clone returns a deep copy so the original document stays untouched when
// the copy is handed to a consumer that mutates it.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	doc, _ := cloneValue(s.Value).(map[string]any)
	return &Schema{Value: doc}
}

func cloneValue(value any) any {
	switch node := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, v := range node {
			out[k] = cloneValue(v)
		}
		return out
	case []any:
		out := make([]any, 0, len(node))
		for _, item := range node {
			out = append(out, cloneValue(item))
		}
		return out
	default:
		return value
	}
}
