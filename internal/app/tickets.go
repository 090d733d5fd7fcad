package app

import (
	"net/http"

	"github.com/metinatakli/cinema-booking/api"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

func (app *Application) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var input api.TicketRequest

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

	ticket := toTicket(input)

	err = app.booking.CreateTicket(r.Context(), &ticket)
	if err != nil {
		app.storageErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toTicketResponse(ticket), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTicket(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ticket, err := app.ticketRepo.GetById(r.Context(), id)
	if err != nil {
		app.storageErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toTicketResponse(*ticket), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// UpdateTicket moves a ticket to another seat, session or order. The new
// coordinates go through the same checks as a fresh booking.
func (app *Application) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.TicketRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	ticket := toTicket(input)
	ticket.ID = id

	err = app.booking.UpdateTicket(r.Context(), &ticket)
	if err != nil {
		app.storageErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toTicketResponse(ticket), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.ticketRepo.Delete(r.Context(), id)
	if err != nil {
		app.storageErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toTicket(input api.TicketRequest) domain.Ticket {
	return domain.Ticket{
		MovieSessionID: input.MovieSessionId,
		OrderID:        input.OrderId,
		Row:            input.Row,
		Seat:           input.Seat,
	}
}

func toTicketResponse(ticket domain.Ticket) api.TicketResponse {
	return api.TicketResponse{
		Id:             ticket.ID,
		MovieSessionId: ticket.MovieSessionID,
		OrderId:        ticket.OrderID,
		Row:            ticket.Row,
		Seat:           ticket.Seat,
	}
}
