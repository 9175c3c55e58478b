package funcschema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractSchema pulls the first JSON object out of free-form text and
// normalizes it. It tolerates markdown code fences, JSON quoted as a string,
// and objects embedded in surrounding prose, in that order of preference.
func ExtractSchema(text string) (*Schema, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("empty input")
	}
	for _, candidate := range schemaCandidates(trimmed) {
		payload := strings.TrimSpace(candidate)
		if payload == "" {
			continue
		}
		if unquoted := unquoteJSON(payload); unquoted != "" {
			payload = unquoted
		}
		var doc map[string]any
		if err := json.Unmarshal([]byte(payload), &doc); err != nil {
			continue
		}
		return FromValue(doc), nil
	}
	return nil, fmt.Errorf("no JSON schema document found in input")
}

func schemaCandidates(text string) []string {
	candidates := []string{text}
	if strings.Contains(text, "```") {
		parts := strings.Split(text, "```")
		for i := 1; i < len(parts); i += 2 {
			block := strings.TrimSpace(parts[i])
			block = strings.TrimPrefix(block, "json")
			block = strings.TrimSpace(block)
			if block != "" {
				candidates = append(candidates, block)
			}
		}
	}
	candidates = append(candidates, findObjectSnippets(text)...)
	if unquoted := unquoteJSON(text); unquoted != "" {
		candidates = append(candidates, unquoted)
		candidates = append(candidates, findObjectSnippets(unquoted)...)
	}
	return candidates
}

func unquoteJSON(input string) string {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, "\"") {
		return ""
	}
	var value string
	if err := json.Unmarshal([]byte(trimmed), &value); err != nil {
		return ""
	}
	return strings.TrimSpace(value)
}

// findObjectSnippets returns every balanced, valid JSON object substring.
func findObjectSnippets(text string) []string {
	data := []byte(text)
	var snippets []string
	for i := 0; i < len(data); i++ {
		if data[i] != '{' {
			continue
		}
		if snippet := scanObject(data, i); snippet != "" {
			snippets = append(snippets, snippet)
			i += len(snippet) - 1
		}
	}
	return snippets
}

func scanObject(data []byte, start int) string {
	depth := 0
	inString := false
	escape := false
	for i := start; i < len(data); i++ {
		ch := data[i]
		if inString {
			if escape {
				escape = false
				continue
			}
			switch ch {
			case '\\':
				escape = true
			case '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				snippet := string(data[start : i+1])
				if json.Valid([]byte(snippet)) {
					return snippet
				}
				return ""
			}
		}
	}
	return ""
}
