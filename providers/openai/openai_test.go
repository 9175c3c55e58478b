package openai

import (
	"encoding/json"
	"testing"

	"github.com/lyricat/goutils/structs"

	"github.com/quailyquaily/funcschema"
)

func testSchema(t *testing.T) *funcschema.Schema {
	t.Helper()
	s, err := funcschema.FromJSON([]byte(`{
		"type": "object",
		"properties": {"city": {"type": "string", "minLength": 1}},
		"required": []
	}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	return s
}

func TestToolParam(t *testing.T) {
	tool := ToolParam("get_weather", "Current weather for a city", testSchema(t))

	fn := tool.GetFunction()
	if fn == nil {
		t.Fatalf("expected function tool")
	}
	if fn.Name != "get_weather" {
		t.Fatalf("unexpected name: %q", fn.Name)
	}
	if !fn.Strict.Valid() || !fn.Strict.Value {
		t.Fatalf("tool should be strict: %#v", fn)
	}
	if !fn.Description.Valid() || fn.Description.Value != "Current weather for a city" {
		t.Fatalf("unexpected description: %#v", fn.Description)
	}
	params := map[string]any(fn.Parameters)
	if params["additionalProperties"] != false {
		t.Fatalf("parameters should be the normalized document: %#v", params)
	}
}

func TestToolParamsNormalizesEnvelopeParameters(t *testing.T) {
	raw := json.RawMessage(`{"type":"object","properties":{"q":{"type":"string","pattern":"^a"}},"required":[]}`)
	tools := []funcschema.Tool{
		{Type: "function", Function: funcschema.ToolFunction{Name: "search", Parameters: raw}},
		{Type: "custom", Function: funcschema.ToolFunction{Name: "skipped"}},
	}

	out, err := ToolParams(tools)
	if err != nil {
		t.Fatalf("ToolParams: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("non-function tools should be skipped, got %d", len(out))
	}

	fn := out[0].GetFunction()
	if fn == nil {
		t.Fatalf("expected function tool")
	}
	params := map[string]any(fn.Parameters)
	props := params["properties"].(map[string]any)
	q := props["q"].(map[string]any)
	if _, ok := q["pattern"]; ok {
		t.Fatalf("pattern should be stripped: %#v", q)
	}
	required, ok := params["required"].([]any)
	if !ok || len(required) != 1 || required[0] != "q" {
		t.Fatalf("required = %#v, want [q]", params["required"])
	}
}

func TestToolParamsRejectsInvalidParameters(t *testing.T) {
	tools := []funcschema.Tool{
		{Type: "function", Function: funcschema.ToolFunction{
			Name:       "broken",
			Parameters: json.RawMessage(`{"type":`),
		}},
	}
	if _, err := ToolParams(tools); err == nil {
		t.Fatalf("expected error for invalid parameters JSON")
	}
}

func TestResponseFormat(t *testing.T) {
	format := ResponseFormat("weather_report", testSchema(t), structs.JSONMap{
		"description": "Structured weather report",
	})

	if format.OfJSONSchema == nil {
		t.Fatalf("expected json_schema response format")
	}
	schema := format.OfJSONSchema.JSONSchema
	if schema.Name != "weather_report" {
		t.Fatalf("unexpected name: %q", schema.Name)
	}
	if !schema.Strict.Valid() || !schema.Strict.Value {
		t.Fatalf("strict should default to true: %#v", schema.Strict)
	}
	if !schema.Description.Valid() || schema.Description.Value != "Structured weather report" {
		t.Fatalf("unexpected description: %#v", schema.Description)
	}
}

func TestResponseFormatStrictOverride(t *testing.T) {
	format := ResponseFormat("loose", testSchema(t), structs.JSONMap{"strict": false})

	schema := format.OfJSONSchema.JSONSchema
	if !schema.Strict.Valid() || schema.Strict.Value {
		t.Fatalf("strict override should apply: %#v", schema.Strict)
	}
}
