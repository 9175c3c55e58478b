package funcschema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Tool is a function tool envelope in the common chat-completions shape.
type Tool struct {
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`
}

type ToolFunction struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
	Strict      *bool           `json:"strict,omitempty"`
}

// FunctionTool builds a strict function tool carrying the normalized schema
// as its parameters.
func FunctionTool(name, description string, s *Schema) (Tool, error) {
	if strings.TrimSpace(name) == "" {
		return Tool{}, fmt.Errorf("tool name is required")
	}
	var params json.RawMessage
	if s != nil {
		data, err := s.JSON()
		if err != nil {
			return Tool{}, fmt.Errorf("serialize schema: %w", err)
		}
		params = data
	}
	strict := true
	return Tool{
		Type: "function",
		Function: ToolFunction{
			Name:        name,
			Description: description,
			Parameters:  params,
			Strict:      &strict,
		},
	}, nil
}
