// Package goopenai converts normalized schemas into request fragments for
// the sashabaranov/go-openai client.
package goopenai

import (
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/quailyquaily/funcschema"
)

// Tool builds a strict function tool definition from a normalized schema.
func Tool(name, description string, s *funcschema.Schema) (openai.Tool, error) {
	fn := &openai.FunctionDefinition{
		Name:        name,
		Description: description,
		Strict:      true,
	}
	if s != nil && s.Value != nil {
		params, err := s.JSON()
		if err != nil {
			return openai.Tool{}, fmt.Errorf("serialize schema: %w", err)
		}
		fn.Parameters = json.RawMessage(params)
	}
	return openai.Tool{
		Type:     openai.ToolTypeFunction,
		Function: fn,
	}, nil
}

// ResponseFormat builds a json_schema response format for structured output.
func ResponseFormat(name, description string, s *funcschema.Schema) (*openai.ChatCompletionResponseFormat, error) {
	if s == nil || s.Value == nil {
		return nil, fmt.Errorf("schema is required")
	}
	data, err := s.JSON()
	if err != nil {
		return nil, fmt.Errorf("serialize schema: %w", err)
	}
	return &openai.ChatCompletionResponseFormat{
		Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
		JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
			Name:        name,
			Description: description,
			Schema:      json.RawMessage(data),
			Strict:      true,
		},
	}, nil
}
