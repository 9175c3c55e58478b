// Package gemini rebuilds normalized schemas into the Gemini schema dialect:
// uppercase type names, nullable instead of "null" in type unions, no
// additionalProperties, and arrays always carrying items.
package gemini

import (
	"strings"

	"github.com/quailyquaily/funcschema"
)

// FunctionDeclaration is the functionDeclarations entry payload.
type FunctionDeclaration struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Parameters  any    `json:"parameters,omitempty"`
}

// Declaration builds a function declaration from a normalized schema.
func Declaration(name, description string, s *funcschema.Schema) FunctionDeclaration {
	decl := FunctionDeclaration{
		Name:        name,
		Description: description,
	}
	if s != nil && s.Value != nil {
		decl.Parameters = ToSchema(s.Value)
	} else {
		decl.Parameters = map[string]any{
			"type":       "OBJECT",
			"properties": map[string]any{},
		}
	}
	return decl
}

// ToSchema rebuilds a schema value into the Gemini dialect. The input is not
// mutated; a new tree is returned.
func ToSchema(in any) any {
	switch node := in.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, v := range node {
			if dropKey(k) {
				continue
			}
			out[k] = ToSchema(v)
		}
		typeNames, nullable := splitTypeValue(node["type"])
		if len(typeNames) > 0 {
			out["type"] = typeNames[0]
		}
		if nullable {
			out["nullable"] = true
		}
		if _, ok := out["type"]; !ok {
			if _, hasProps := out["properties"]; hasProps {
				out["type"] = "OBJECT"
			} else if _, hasItems := out["items"]; hasItems {
				out["type"] = "ARRAY"
			}
		}
		if t, _ := out["type"].(string); t == "ARRAY" {
			if _, ok := out["items"]; !ok {
				out["items"] = map[string]any{}
			}
		}
		return out
	case []any:
		out := make([]any, 0, len(node))
		for _, item := range node {
			out = append(out, ToSchema(item))
		}
		return out
	default:
		return in
	}
}

func dropKey(key string) bool {
	switch key {
	case "additionalProperties", "$schema":
		return true
	default:
		return false
	}
}

// splitTypeValue turns a type value (string or union) into uppercase Gemini
// type names plus a nullable flag for "null" members.
func splitTypeValue(raw any) ([]string, bool) {
	switch t := raw.(type) {
	case string:
		upper := strings.ToUpper(strings.TrimSpace(t))
		if upper == "NULL" {
			return nil, true
		}
		if upper == "" {
			return nil, false
		}
		return []string{upper}, false
	case []any:
		names := make([]string, 0, len(t))
		nullable := false
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				continue
			}
			upper := strings.ToUpper(strings.TrimSpace(s))
			if upper == "" {
				continue
			}
			if upper == "NULL" {
				nullable = true
				continue
			}
			names = append(names, upper)
		}
		return names, nullable
	default:
		return nil, false
	}
}
