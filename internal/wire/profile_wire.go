package wire

import (
	"github.com/go-chi/chi/v5"
)

func (w *Wiring) profileRoutes(api chi.Router) {
	api.Group(func(r chi.Router) {
		r.Use(w.auth())

		r.Get("/profile/{id}", w.handler.Profile.GetProfile)
		r.Patch("/profile/{id}", w.handler.Profile.UpdateProfile)

		r.Get("/profiles/business", w.handler.Profile.ListBusinessProfiles)
		r.Get("/profiles/customer", w.handler.Profile.ListCustomerProfiles)
	})
}
