package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handlers interface {
	GetOrders(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

func InitRoutes(r *chi.Mux, handlers Handlers) *chi.Mux {
	r.Get("/orders", handlers.GetOrders)
	r.Get("/ping", handlers.Ping)

	return r
}
