// Package respond holds the JSON helpers shared by the API handlers.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"

	"merger_maestro/pkg/core/scenario"
)

const maxBodyBytes = 1 << 20

// JSON writes v with the given status. Marshal failures become a plain 500.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		fmt.Printf("[ERROR] encode response: %v\n", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(data)
}

// Error writes {"error": msg}.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

// Decode reads a JSON body into v. Unknown fields are rejected.
func Decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// DecodeScenario reads a {acquirer, target, deal} body.
func DecodeScenario(w http.ResponseWriter, r *http.Request) (scenario.Scenario, error) {
	var s scenario.Scenario
	if err := Decode(w, r, &s); err != nil {
		return scenario.Scenario{}, err
	}
	return s, nil
}

// RequireMethod writes 405 and returns false when r.Method != method.
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.Header().Set("Allow", method)
		Error(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}
