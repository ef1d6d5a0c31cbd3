package wire

import (
	"freelance-market/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func (w *Wiring) offerRoutes(api chi.Router) {
	// Browsing the listing is public
	api.Get("/offers", w.handler.Offer.ListPackages)

	api.Group(func(r chi.Router) {
		r.Use(w.auth())

		r.Get("/offers/{id}", w.handler.Offer.GetPackage)
		r.Get("/offerdetails/{id}", w.handler.Offer.GetOfferDetail)

		// Only business users manage their packages
		r.Group(func(b chi.Router) {
			b.Use(middleware.Business(w.repo.Profile, w.log))
			b.Post("/offers", w.handler.Offer.CreatePackage)
			b.Patch("/offers/{id}", w.handler.Offer.UpdatePackage)
		})

		// Removing a package is an admin cleanup operation
		r.Group(func(a chi.Router) {
			a.Use(middleware.Staff(w.repo.User, w.log))
			a.Delete("/offers/{id}", w.handler.Offer.DeletePackage)
		})
	})
}
