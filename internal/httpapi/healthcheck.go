package httpapi

import (
	"net/http"

	"climabrasil-server/internal/utils"
)

// The service holds no stateful dependencies; liveness is answering at all.
func handleHealthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func registerHealthcheck(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", handleHealthz)
}
