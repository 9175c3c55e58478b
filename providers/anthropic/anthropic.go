// Package anthropic builds raw JSON tool payloads for the Anthropic
// messages API (also accepted by Bedrock's InvokeModel for Anthropic
// models, which takes the same wire format).
package anthropic

import "github.com/quailyquaily/funcschema"

// Tool builds the tool definition payload carrying the normalized schema as
// input_schema. The schema document is deep-copied so later mutation of the
// payload does not leak back into the Schema.
func Tool(name, description string, s *funcschema.Schema) map[string]any {
	input := map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
	if s != nil && s.Value != nil {
		if clone := s.Clone(); clone != nil && clone.Value != nil {
			input = clone.Value
		}
	}
	out := map[string]any{
		"name":         name,
		"input_schema": input,
	}
	if description != "" {
		out["description"] = description
	}
	return out
}

// Tools builds the tools array payload for a messages request.
func Tools(defs ...map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(defs))
	for _, def := range defs {
		if def == nil {
			continue
		}
		out = append(out, def)
	}
	return out
}
