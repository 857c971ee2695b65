package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// LenientUnmarshal decodes hand-written JSON into v. Attempts, in order:
//  1. standard JSON
//  2. Hjson (comments, unquoted keys, optional commas)
//  3. json-repair (single quotes, trailing commas, unclosed objects)
//
// It returns the strict JSON text that was finally decoded into v.
func LenientUnmarshal(input []byte, v interface{}) (string, error) {
	if err := json.Unmarshal(input, v); err == nil {
		return string(input), nil
	}

	if normalized, err := hjsonToJSON(input); err == nil {
		if err := json.Unmarshal([]byte(normalized), v); err == nil {
			return normalized, nil
		}
	}

	repaired, err := jsonrepair.RepairJSON(string(input))
	if err == nil {
		if err := json.Unmarshal([]byte(repaired), v); err == nil {
			return repaired, nil
		}
	}

	return "", fmt.Errorf("lenient parse failed: input is not JSON, Hjson or repairable JSON")
}

func hjsonToJSON(input []byte) (string, error) {
	var tree interface{}
	if err := hjson.Unmarshal(input, &tree); err != nil {
		return "", fmt.Errorf("hjson parse: %w", err)
	}
	out, err := json.Marshal(tree)
	if err != nil {
		return "", fmt.Errorf("hjson re-encode: %w", err)
	}
	return string(out), nil
}
