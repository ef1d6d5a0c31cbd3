package wire

import (
	"freelance-market/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func (w *Wiring) orderRoutes(api chi.Router) {
	api.Group(func(r chi.Router) {
		r.Use(w.auth())

		r.Get("/orders", w.handler.Order.ListOrders)
		r.Get("/orders/{id}", w.handler.Order.GetOrder)

		r.Get("/order-count/{business_user_id}", w.handler.Order.CountOrders)
		r.Get("/completed-order-count/{business_user_id}", w.handler.Order.CountCompletedOrders)

		// Only customers place orders
		r.Group(func(c chi.Router) {
			c.Use(middleware.Customer(w.repo.Profile, w.log))
			c.Post("/orders", w.handler.Order.CreateOrder)
		})

		// The business side moves an order through its lifecycle
		r.Patch("/orders/{id}", w.handler.Order.UpdateOrderStatus)

		// Deleting an order is an admin cleanup operation
		r.Group(func(a chi.Router) {
			a.Use(middleware.Staff(w.repo.User, w.log))
			a.Delete("/orders/{id}", w.handler.Order.DeleteOrder)
		})
	})
}
