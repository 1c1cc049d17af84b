package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var gradeTestSchema = &Schema{
	Name: "validate-test-grade",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"score"},
		"properties": map[string]any{
			"score": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 1,
			},
		},
		"additionalProperties": false,
	},
}

func TestValidateResponse(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("nil schema must not validate: %v", err)
	}

	if err := validateResponse(gradeTestSchema, json.RawMessage(`{"score": 0.7}`)); err != nil {
		t.Errorf("conforming payload rejected: %v", err)
	}

	bad := []string{
		`{"score": 1.7}`,
		`{"score": "high"}`,
		`{}`,
		`{"score": 0.5, "extra": 1}`,
		`{"score":`,
	}
	for _, payload := range bad {
		err := validateResponse(gradeTestSchema, json.RawMessage(payload))
		var inv *ErrInvalidResponse
		if !errors.As(err, &inv) {
			t.Errorf("payload %s: expected ErrInvalidResponse, got %v", payload, err)
		}
	}
}

func TestValidateResponse_SchemaCached(t *testing.T) {
	// Two validations of the same named schema must reuse the compiled
	// form; this just exercises the cache path.
	for i := 0; i < 2; i++ {
		if err := validateResponse(gradeTestSchema, json.RawMessage(`{"score": 0}`)); err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
	}
}
