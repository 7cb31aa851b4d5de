package wire

import (
	"net/http"

	"theater-booking/internal/adaptor"
	"theater-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring assembles handlers and routes on top of an already
// bootstrapped service layer.
func Wiring(handler *adaptor.Handler, logger *zap.Logger) *App {
	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	wireUser(r, handler.User)
	wireCatalog(r, handler.Catalog)
	wireSchedule(r, handler.Schedule)
	wireBooking(r, handler.Booking)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
