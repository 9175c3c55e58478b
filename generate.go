package funcschema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// ForType generates a schema for the Go type T by reflection and normalizes
// it. The only failure mode is the conversion of the reflected schema into a
// plain JSON document.
func ForType[T any]() (*Schema, error) {
	return ForValue(new(T))
}

// ForValue is the non-generic form of ForType, for callers holding a value
// of the target type.
func ForValue(v any) (*Schema, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	doc, err := toDocument(reflector.Reflect(v))
	if err != nil {
		return nil, err
	}
	return FromValue(doc), nil
}

// toDocument converts the reflector's schema representation into a plain
// decoded JSON document via a marshal round trip.
func toDocument(schema *jsonschema.Schema) (map[string]any, error) {
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("serialize schema: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("serialize schema: %w", err)
	}
	return doc, nil
}
