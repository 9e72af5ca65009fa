package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/hackgods/care-console/internal/care"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

type AgendaResponse struct {
	Date  string             `json:"date"`
	Items []care.Appointment `json:"items"`
}

type UpcomingResponse struct {
	At    string            `json:"at"`
	Items []care.Medication `json:"items"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, details string) {
	writeJSON(w, status, ErrorResponse{Error: code, Details: details})
}

// decodeFormFields reads a JSON object of form fields. Strings are taken as
// typed, string arrays are joined with ", " (the times-of-day text field) and
// other scalars keep their JSON text, so {"age": 78} and {"age": "78"} agree.
func decodeFormFields(r *http.Request) (map[string]string, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(raw))
	for name, v := range raw {
		v = bytes.TrimSpace(v)
		switch {
		case len(v) == 0 || bytes.Equal(v, []byte("null")):
			out[name] = ""
		case v[0] == '"':
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return nil, fmt.Errorf("field %s: %w", name, err)
			}
			out[name] = s
		case v[0] == '[':
			var list []string
			if err := json.Unmarshal(v, &list); err != nil {
				return nil, fmt.Errorf("field %s: %w", name, err)
			}
			out[name] = strings.Join(list, ", ")
		case v[0] == '{':
			return nil, fmt.Errorf("field %s: objects are not supported", name)
		default:
			out[name] = string(v)
		}
	}
	return out, nil
}
