package wire

import (
	"github.com/go-chi/chi/v5"
)

func (w *Wiring) authRoutes(api chi.Router) {
	api.Post("/registration", w.handler.Auth.Register)
	api.Post("/login", w.handler.Auth.Login)

	api.Group(func(r chi.Router) {
		r.Use(w.auth())
		r.Post("/logout", w.handler.Auth.Logout)
	})
}
