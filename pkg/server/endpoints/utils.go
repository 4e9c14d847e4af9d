package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithMessage(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"message": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// requiredQuery returns the named query parameter as sent, writing a 400
// response when it is absent or blank.
func requiredQuery(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := r.URL.Query().Get(name)
	if strings.TrimSpace(value) == "" {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("missing required query parameter: %s", name))
		return "", false
	}
	return value, true
}

// listQuery collects a list parameter given either repeated
// (?s=1&s=2) or comma separated (?s=1,2). Blank items are dropped, the
// others are kept as sent.
func listQuery(r *http.Request, name string) []string {
	var out []string
	for _, raw := range r.URL.Query()[name] {
		for _, item := range strings.Split(raw, ",") {
			if strings.TrimSpace(item) != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

// decodeBody decodes a JSON request body into v.
func decodeBody(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("request body is required")
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
