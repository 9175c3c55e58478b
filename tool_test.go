package funcschema

import (
	"encoding/json"
	"testing"
)

func TestFunctionTool(t *testing.T) {
	s := FromValue(map[string]any{
		"type":       "object",
		"properties": map[string]any{"city": map[string]any{"type": "string"}},
		"required":   []any{},
	})

	tool, err := FunctionTool("get_weather", "Current weather for a city", s)
	if err != nil {
		t.Fatalf("FunctionTool: %v", err)
	}
	if tool.Type != "function" {
		t.Fatalf("unexpected tool type: %q", tool.Type)
	}
	if tool.Function.Strict == nil || !*tool.Function.Strict {
		t.Fatalf("tool should be strict: %#v", tool.Function)
	}

	var params map[string]any
	if err := json.Unmarshal(tool.Function.Parameters, &params); err != nil {
		t.Fatalf("parameters should be valid JSON: %v", err)
	}
	if params["additionalProperties"] != false {
		t.Fatalf("parameters should carry the normalized document: %#v", params)
	}

	data, err := json.Marshal(tool)
	if err != nil {
		t.Fatalf("marshal tool: %v", err)
	}
	var envelope struct {
		Function struct {
			Parameters map[string]any `json:"parameters"`
		} `json:"function"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if envelope.Function.Parameters["type"] != "object" {
		t.Fatalf("parameters should marshal inline, not encoded: %s", data)
	}
}

func TestFunctionToolRequiresName(t *testing.T) {
	if _, err := FunctionTool("  ", "", nil); err == nil {
		t.Fatalf("expected error for blank name")
	}
}

func TestFunctionToolNilSchema(t *testing.T) {
	tool, err := FunctionTool("noop", "", nil)
	if err != nil {
		t.Fatalf("FunctionTool: %v", err)
	}
	if len(tool.Function.Parameters) != 0 {
		t.Fatalf("expected no parameters: %#v", tool.Function)
	}
}
