package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxBodyBytes caps request bodies accepted by the JSON endpoints
const maxBodyBytes = 1 << 20

// decodeJSON decodes the request body into dst
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
