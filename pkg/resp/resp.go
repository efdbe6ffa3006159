package resp

import (
	"encoding/json"
	"net/http"
)

func WriteJSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteJSONError writes the uniform error shape: one human-readable message
// plus a machine-checkable kind.
func WriteJSONError(w http.ResponseWriter, status int, kind, message string) {
	WriteJSONResponse(w, status, map[string]string{
		"error": message,
		"kind":  kind,
	})
}
