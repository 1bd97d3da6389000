package httpapi

import (
	"net/http"
)

func NewMux() *http.ServeMux {
	mux := http.NewServeMux()
	registerHealthcheck(mux)
	registerHome(mux)
	return mux
}
