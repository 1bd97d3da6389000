package httpapi

import (
	"net/http"

	"climabrasil-server/internal/utils"
)

// handleHome serves the info payload hosting platforms probe on the root path.
func handleHome(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"status":    "online",
		"projeto":   "Clima Horário Brasil - INMET",
		"descricao": "API de dados meteorológicos horários do INMET",
		"endpoints": map[string]string{
			"clima":            "/api/clima",
			"relatorio_diario": "/relatorio/diario",
		},
	})
}

func registerHome(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", handleHome)
}
