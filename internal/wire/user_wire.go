package wire

import (
	"theater-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	// POST /api/register - Create a customer account
	r.Post("/api/register", userHandler.Register)

	// POST /api/login - Verify credentials, return the profile
	r.Post("/api/login", userHandler.Login)
}
