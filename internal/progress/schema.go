package progress

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://game-progress.json"

// gameProgressSchema describes the gameProgress document: an object keyed
// by game type ID.
var gameProgressSchema = map[string]any{
	"type": "object",
	"additionalProperties": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"totalProblems":       map[string]any{"type": "integer", "minimum": 0},
			"correctAnswers":      map[string]any{"type": "integer", "minimum": 0},
			"highestScore":        map[string]any{"type": "integer", "minimum": 0},
			"lastPlayed":          map[string]any{"type": "string"},
			"highestDifficulty":   map[string]any{"type": "integer", "minimum": 1},
			"streakCount":         map[string]any{"type": "integer", "minimum": 0},
			"timeSpent":           map[string]any{"type": "number", "minimum": 0},
			"averageResponseTime": map[string]any{"type": "number", "minimum": 0},
		},
		"required": []any{
			"totalProblems", "correctAnswers", "highestScore", "lastPlayed",
			"highestDifficulty", "streakCount", "timeSpent", "averageResponseTime",
		},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles gameProgressSchema once.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), so the
		// Go map goes through a JSON round trip first.
		defBytes, err := json.Marshal(gameProgressSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateDocument checks raw gameProgress JSON against the schema.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
