package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/eprocurement-ocds/revision/pkg/composables"
)

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to write response")
	}
}
