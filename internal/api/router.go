package api

import (
	"github.com/go-chi/chi/v5"
)

func (s *Server) RegisterRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(s.logRequests)

	r.Post("/signup", s.signup)
	r.Post("/login", s.login)

	r.Post("/transactions", s.addTransaction)
	r.Get("/transactions/{userId}", s.listTransactions)

	return r
}
