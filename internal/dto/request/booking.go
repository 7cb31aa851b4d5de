package request

type ReserveRequest struct {
	ScreeningID     string `json:"screening_id" validate:"required,uuid"`
	UserID          string `json:"user_id" validate:"required,uuid"`
	NumberOfTickets int    `json:"number_of_tickets" validate:"required,min=1"`
}
