package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"theater-booking/internal/dto/request"
	"theater-booking/internal/usecase"
	"theater-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Reserve handles POST /api/bookings
func (h *BookingHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	var req request.ReserveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	reservation, err := h.service.Reserve(r.Context(), &req)
	if err != nil {
		h.handleReserveError(w, err)
		return
	}

	utils.ResponseCreated(w, "Reservation confirmed", reservation)
}

func (h *BookingHandler) handleReserveError(w http.ResponseWriter, err error) {
	var insufficient *usecase.InsufficientSeatsError

	switch {
	case errors.As(err, &insufficient):
		h.log.Warn("Reservation rejected",
			zap.Int("available", insufficient.Available),
		)
		utils.ResponseConflict(w, err.Error(), map[string]int{
			"available_seats": insufficient.Available,
		})

	case errors.Is(err, usecase.ErrScreeningNotFound),
		errors.Is(err, usecase.ErrUserNotFound):
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidID),
		errors.Is(err, usecase.ErrInvalidTicketCount):
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to create reservation", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// GetHistory handles GET /api/users/{id}/bookings
func (h *BookingHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	history, err := h.service.History(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			utils.ResponseNotFound(w, err.Error())
		case errors.Is(err, usecase.ErrInvalidID):
			utils.ResponseBadRequest(w, err.Error(), nil)
		default:
			h.log.Error("Failed to load booking history",
				zap.Error(err),
				zap.String("user_id", userID),
			)
			utils.ResponseInternalError(w, "Internal server error")
		}
		return
	}

	utils.ResponseSuccess(w, fmt.Sprintf("Found %d bookings", len(history)), history)
}
