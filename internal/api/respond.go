package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"calproxy/internal/entities"
	apperrors "calproxy/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders any error as {success:false, error, details?}. Errors
// that are not an HTTPError are treated as internal failures.
func writeError(w http.ResponseWriter, err error) {
	var he *apperrors.HTTPError
	if !errors.As(err, &he) {
		he = apperrors.ErrInternal(err)
	}
	resp := entities.ErrorResponse{Success: false, Error: he.Message}
	if he.Kind == apperrors.KindUpstream {
		details := he.Details
		resp.Details = &details
	}
	writeJSON(w, he.Code, resp)
}
