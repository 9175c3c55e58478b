// Package normalize rewrites arbitrary JSON Schema documents into the
// restricted dialect accepted by function-calling APIs. Documents are plain
// decoded JSON values (map[string]any / []any / scalars) and every pass
// mutates them in place.
package normalize

import "sort"

// constraintKeys are refinement keywords the target dialect rejects outright.
var constraintKeys = []string{
	"minLength", "maxLength", "pattern", "format",
	"minimum", "maximum", "multipleOf",
	"patternProperties", "unevaluatedProperties", "propertyNames",
	"minProperties", "maxProperties",
	"unevaluatedItems", "contains", "minContains", "maxContains",
	"minItems", "maxItems", "uniqueItems",
}

// unionKeys are combinator keywords rewritten to anyOf, processed in this
// fixed order. When a node carries both, the second move overwrites the
// first under anyOf; this matches the upstream behavior and is deliberate.
var unionKeys = []string{"oneOf", "allOf"}

// Apply runs the full normalization pipeline on the document, mutating it in
// place, and returns the same map. Each pass is total: unexpected shapes are
// skipped at that node, never reported as errors. Applying the pipeline to
// an already-normalized document is a no-op.
func Apply(doc map[string]any) map[string]any {
	StripConstraints(doc)
	RewriteUnions(doc)
	CloseObjects(doc)
	RequireDeclared(doc)
	return doc
}

// StripConstraints removes every constraint keyword from every object node
// in the value, at any depth, including inside arrays.
func StripConstraints(value any) {
	walk(value, func(node map[string]any) {
		for _, key := range constraintKeys {
			delete(node, key)
		}
	})
}

// RewriteUnions moves oneOf and allOf values under anyOf, removing the
// source key. A native anyOf is left alone unless overwritten by the move.
func RewriteUnions(value any) {
	walk(value, func(node map[string]any) {
		for _, key := range unionKeys {
			if sub, ok := node[key]; ok {
				delete(node, key)
				node["anyOf"] = sub
			}
		}
	})
}

// CloseObjects sets additionalProperties to false on every node whose type
// is the string "object", overwriting any prior value.
func CloseObjects(value any) {
	walk(value, func(node map[string]any) {
		if t, ok := node["type"].(string); ok && t == "object" {
			node["additionalProperties"] = false
		}
	})
}

// RequireDeclared appends every declared property name missing from an
// existing required array, preserving pre-existing entries and their order.
// Nodes without a required array (or with a non-array value) are left
// unchanged; this pass never synthesizes one.
func RequireDeclared(value any) {
	walk(value, func(node map[string]any) {
		props, ok := node["properties"].(map[string]any)
		if !ok {
			return
		}
		required, ok := node["required"].([]any)
		if !ok {
			return
		}
		present := make(map[string]bool, len(required))
		for _, entry := range required {
			if name, ok := entry.(string); ok {
				present[name] = true
			}
		}
		missing := make([]string, 0, len(props))
		for name := range props {
			if !present[name] {
				missing = append(missing, name)
			}
		}
		sort.Strings(missing)
		for _, name := range missing {
			required = append(required, name)
		}
		node["required"] = required
	})
}

// walk visits every object node in the value, depth first, applying fn.
// Arrays are traversed; scalars are ignored.
func walk(value any, fn func(node map[string]any)) {
	switch node := value.(type) {
	case map[string]any:
		fn(node)
		for _, sub := range node {
			walk(sub, fn)
		}
	case []any:
		for _, item := range node {
			walk(item, fn)
		}
	}
}
