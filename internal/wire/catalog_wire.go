package wire

import (
	"theater-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// GET /api/theaters - List theaters with their movie line-ups
	r.Get("/api/theaters", catalogHandler.GetTheaters)

	// GET /api/movies - List the movie catalog
	r.Get("/api/movies", catalogHandler.GetMovies)
}
