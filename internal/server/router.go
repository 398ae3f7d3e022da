package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"fincarts/internal/listing"
	ordercontroller "fincarts/internal/order/controller"
	"fincarts/internal/seller"
)

func NewRouter(
	orders *ordercontroller.Controller,
	listings *listing.Controller,
	sellers *seller.Controller,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/seller", func(r chi.Router) {
		r.Route("/order", func(r chi.Router) {
			r.Get("/get-orders/{sellerId}", orders.GetOrders)
			r.Post("/order-action", orders.OrderAction)
		})
		r.Post("/listing/search", listings.HandleSearchListings)
		r.Get("/profile/{sellerId}", sellers.GetProfile)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
