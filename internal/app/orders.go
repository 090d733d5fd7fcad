package app

import (
	"net/http"

	"github.com/metinatakli/cinema-booking/api"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

// CreateOrder books every ticket of the request at once. Either all seats
// are stored or none are.
func (app *Application) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var input api.CreateOrderRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	order := domain.Order{
		UserID:  input.UserId,
		Tickets: make([]domain.Ticket, len(input.Tickets)),
	}
	for i, t := range input.Tickets {
		order.Tickets[i] = domain.Ticket{
			MovieSessionID: t.MovieSessionId,
			Row:            t.Row,
			Seat:           t.Seat,
		}
	}

	err = app.booking.PlaceOrder(r.Context(), &order)
	if err != nil {
		app.storageErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toOrderResponse(&order), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.orderRepo.GetById(r.Context(), id)
	if err != nil {
		app.storageErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toOrderResponse(order), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteOrder removes the order and frees all of its seats.
func (app *Application) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.orderRepo.Delete(r.Context(), id)
	if err != nil {
		app.storageErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toOrderResponse(order *domain.Order) api.OrderResponse {
	resp := api.OrderResponse{
		Id:        order.ID,
		UserId:    order.UserID,
		CreatedAt: order.CreatedAt,
		Tickets:   make([]api.TicketResponse, len(order.Tickets)),
	}

	for i, ticket := range order.Tickets {
		resp.Tickets[i] = toTicketResponse(ticket)
	}

	return resp
}
