package clima

import (
	"net/http"

	"climabrasil-server/internal/modules/clima/controller"
	"climabrasil-server/internal/modules/clima/inmet"
)

func RegisterFeature(mux *http.ServeMux, fetcher inmet.HourFetcher) {
	climaController := controller.NewClimaController(fetcher)
	climaController.RegisterRoutes(mux)
}
