package app

import (
	"net/http"

	"github.com/metinatakli/cinema-booking/api"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

func (app *Application) CreateMovieSession(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieSessionRequest

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

	session := domain.MovieSession{
		ShowTime:     input.ShowTime,
		MovieID:      input.MovieId,
		CinemaHallID: input.CinemaHallId,
	}

	err = app.sessionRepo.Create(r.Context(), &session)
	if err != nil {
		app.storageErrorResponse(w, r, err)
		return
	}

	created, err := app.sessionRepo.GetById(r.Context(), session.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toMovieSessionResponse(created), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieSession(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	session, err := app.sessionRepo.GetById(r.Context(), id)
	if err != nil {
		app.storageErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieSessionResponse(session), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteMovieSession removes the session and every ticket sold for it.
func (app *Application) DeleteMovieSession(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.sessionRepo.Delete(r.Context(), id)
	if err != nil {
		app.storageErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetMovieSessionTickets lists the seats already taken for a session
// together with how many are still free.
func (app *Application) GetMovieSessionTickets(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	session, err := app.sessionRepo.GetById(r.Context(), id)
	if err != nil {
		app.storageErrorResponse(w, r, err)
		return
	}

	tickets, err := app.ticketRepo.GetByMovieSessionId(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	taken := make([]api.TakenSeat, len(tickets))
	for i, ticket := range tickets {
		taken[i] = api.TakenSeat{Row: ticket.Row, Seat: ticket.Seat}
	}

	capacity := 0
	if session.CinemaHall != nil {
		capacity = session.CinemaHall.Capacity()
	}

	resp := api.MovieSessionTicketsResponse{
		MovieSessionId: session.ID,
		Capacity:       capacity,
		Available:      capacity - len(tickets),
		TakenSeats:     taken,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toMovieSessionResponse(session *domain.MovieSession) api.MovieSessionResponse {
	resp := api.MovieSessionResponse{
		Id:       session.ID,
		ShowTime: session.ShowTime,
		MovieId:  session.MovieID,
	}

	if session.CinemaHall != nil {
		resp.CinemaHall = toCinemaHallResponse(*session.CinemaHall)
	}

	return resp
}
