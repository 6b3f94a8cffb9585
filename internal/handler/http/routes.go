package http

import (
	"net/http"

	"github.com/MKhiriev/go-account-keeper/internal/app"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/accounts", func(r chi.Router) {
			// routes without authorization
			r.Post("/login", h.login)
			r.Post("/", h.createAccount)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)

				r.Delete("/logout", h.logout)
				r.With(withETag).Get("/", h.listAccounts)
				r.With(withETag).Get("/{id}", h.getAccount)
				r.Put("/{id}", h.updateAccount)
				r.Delete("/{id}", h.deleteAccount)
			})
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgNotFound}, http.StatusNotFound)
}
