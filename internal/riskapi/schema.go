package riskapi

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// verdictSchema constrains the service response before it is trusted.
// A 2xx body that fails this schema is treated as a submission failure.
var verdictSchema = map[string]any{
	"type": "object",
	"required": []any{
		"risk_score", "risk_category", "cognitive_risk", "speech_analyzed",
	},
	"properties": map[string]any{
		"success": map[string]any{"type": "boolean"},
		"risk_score": map[string]any{
			"type":    "number",
			"minimum": 0,
			"maximum": 100,
		},
		"risk_category": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"cognitive_risk": map[string]any{
			"type":    "number",
			"minimum": 0,
			"maximum": 100,
		},
		"speech_analyzed": map[string]any{"type": "boolean"},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateVerdict checks raw JSON against the verdict schema.
// Returns *ErrInvalidResponse on any failure.
func validateVerdict(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledVerdictSchema()
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("compile schema: %w", err)}
	}

	if err := schema.Validate(parsed); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

// compiledVerdictSchema compiles the schema once and caches it.
func compiledVerdictSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a parsed JSON value, so round-trip the map.
		defBytes, err := json.Marshal(verdictSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://verdict.json"
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}
