package gen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// The payload schemas gate what extracted JSON is allowed into the
// normalization step: key presence, types, and array lengths. Semantic
// rules (gap markers, word counts, keyword use) are checked afterwards.

var clozeSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"text": map[string]any{"type": "string", "minLength": 1},
		"gaps": map[string]any{
			"type":     "array",
			"minItems": 8,
			"maxItems": 8,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"options": map[string]any{
						"type":     "array",
						"minItems": 4,
						"maxItems": 4,
						"items":    map[string]any{"type": "string"},
					},
					"correct": map[string]any{"type": "integer"},
				},
				"required": []any{"options"},
			},
		},
	},
	"required": []any{"text", "gaps"},
}

var openClozeSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"text": map[string]any{"type": "string", "minLength": 1},
		"answers": map[string]any{
			"type":     "array",
			"minItems": 8,
			"maxItems": 8,
			"items":    map[string]any{"type": "string"},
		},
	},
	"required": []any{"text", "answers"},
}

var wordFormationSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"text": map[string]any{"type": "string", "minLength": 1},
		"stems": map[string]any{
			"type":     "array",
			"minItems": 8,
			"maxItems": 8,
			"items":    map[string]any{"type": "string"},
		},
		"answers": map[string]any{
			"type":     "array",
			"minItems": 8,
			"maxItems": 8,
			"items":    map[string]any{"type": "string"},
		},
	},
	"required": []any{"text", "stems", "answers"},
}

var transformationBatchSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sentence1":     map[string]any{"type": "string"},
			"keyword":       map[string]any{"type": "string"},
			"sentence2":     map[string]any{"type": "string"},
			"answer":        map[string]any{"type": "string"},
			"grammar_topic": map[string]any{"type": "string"},
		},
		"required": []any{"sentence1", "keyword", "sentence2", "answer"},
	},
}

var readingSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title": map[string]any{"type": "string", "minLength": 1},
		"text":  map[string]any{"type": "string", "minLength": 1},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 6,
			"maxItems": 6,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"q": map[string]any{"type": "string"},
					"options": map[string]any{
						"type":     "array",
						"minItems": 4,
						"maxItems": 4,
						"items":    map[string]any{"type": "string"},
					},
					"correct": map[string]any{"type": "integer"},
				},
				"required": []any{"q", "options"},
			},
		},
	},
	"required": []any{"title", "text", "questions"},
}

var gappedTextSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"paragraphs": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    map[string]any{"type": "string"},
		},
		"sentences": map[string]any{
			"type":     "array",
			"minItems": 7,
			"maxItems": 7,
			"items":    map[string]any{"type": "string"},
		},
		"answers": map[string]any{
			"type":     "array",
			"minItems": 6,
			"maxItems": 6,
			"items":    map[string]any{"type": "integer"},
		},
	},
	"required": []any{"paragraphs", "sentences", "answers"},
}

var matchingSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"sections": map[string]any{
			"type":     "array",
			"minItems": 4,
			"maxItems": 6,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string"},
					"title": map[string]any{"type": "string"},
					"text":  map[string]any{"type": "string"},
				},
				"required": []any{"id", "text"},
			},
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 10,
			"maxItems": 10,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text":    map[string]any{"type": "string"},
					"correct": map[string]any{"type": "string"},
				},
				"required": []any{"text", "correct"},
			},
		},
	},
	"required": []any{"sections", "questions"},
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateAgainstSchema checks an extracted JSON document against a named
// schema definition. A failure is a *ValidationError: the output is bad,
// not the pipeline.
func validateAgainstSchema(name string, def map[string]any, doc []byte) error {
	var parsed any
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return rejectf("schema", "invalid JSON: %v", err)
	}

	compiled, err := getCompiledSchema(name, def)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return rejectf("schema", "%v", err)
	}
	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	// Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
