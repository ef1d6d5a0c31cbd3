package wire

import (
	"freelance-market/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func (w *Wiring) reviewRoutes(api chi.Router) {
	api.Group(func(r chi.Router) {
		r.Use(w.auth())

		r.Get("/reviews", w.handler.Review.ListReviews)
		r.Get("/reviews/{id}", w.handler.Review.GetReview)
		r.Patch("/reviews/{id}", w.handler.Review.UpdateReview)
		r.Delete("/reviews/{id}", w.handler.Review.DeleteReview)

		// Only customers write reviews
		r.Group(func(c chi.Router) {
			c.Use(middleware.Customer(w.repo.Profile, w.log))
			c.Post("/reviews", w.handler.Review.CreateReview)
		})
	})
}
