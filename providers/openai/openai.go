// Package openai converts normalized schemas into OpenAI SDK request
// fragments: strict function tools and json_schema response formats. It
// never calls the API.
package openai

import (
	"encoding/json"
	"strings"

	"github.com/lyricat/goutils/structs"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"
	"github.com/quailyquaily/funcschema"
	"github.com/quailyquaily/funcschema/normalize"
)

// ToolParam builds a strict function tool param from a normalized schema.
func ToolParam(name, description string, s *funcschema.Schema) openai.ChatCompletionToolUnionParam {
	fn := shared.FunctionDefinitionParam{
		Name:   name,
		Strict: openai.Bool(true),
	}
	if description != "" {
		fn.Description = openai.String(description)
	}
	if s != nil && s.Value != nil {
		fn.Parameters = shared.FunctionParameters(s.Value)
	}
	return openai.ChatCompletionFunctionTool(fn)
}

// ToolParams converts generic tool envelopes to SDK tool params. Non-function
// tools are skipped. Parameters are run through the normalization pipeline so
// envelopes built outside this module still satisfy the strict dialect.
func ToolParams(tools []funcschema.Tool) ([]openai.ChatCompletionToolUnionParam, error) {
	out := make([]openai.ChatCompletionToolUnionParam, 0, len(tools))
	for _, tool := range tools {
		if tool.Type != "function" {
			continue
		}
		fn := shared.FunctionDefinitionParam{
			Name: tool.Function.Name,
		}
		if tool.Function.Description != "" {
			fn.Description = openai.String(tool.Function.Description)
		}
		if tool.Function.Strict != nil {
			fn.Strict = openai.Bool(*tool.Function.Strict)
		}
		if len(tool.Function.Parameters) > 0 {
			var params map[string]any
			if err := json.Unmarshal(tool.Function.Parameters, &params); err != nil {
				return nil, err
			}
			normalize.Apply(params)
			fn.Parameters = shared.FunctionParameters(params)
		}
		out = append(out, openai.ChatCompletionFunctionTool(fn))
	}
	return out, nil
}

// ResponseFormat builds a json_schema response format for structured output.
// Recognized opts keys: "description" (string) and "strict" (bool, defaults
// to true).
func ResponseFormat(name string, s *funcschema.Schema, opts structs.JSONMap) openai.ChatCompletionNewParamsResponseFormatUnion {
	jsonSchema := shared.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:   name,
		Strict: openai.Bool(true),
	}
	if s != nil && s.Value != nil {
		jsonSchema.Schema = s.Value
	}
	if len(opts) > 0 {
		opt := &opts
		if opt.HasKey("description") {
			if desc := strings.TrimSpace(opt.GetString("description")); desc != "" {
				jsonSchema.Description = openai.String(desc)
			}
		}
		if opt.HasKey("strict") {
			jsonSchema.Strict = openai.Bool(opt.GetBool("strict"))
		}
	}
	return openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{JSONSchema: jsonSchema},
	}
}
