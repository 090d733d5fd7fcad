package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-booking/api"
	"github.com/metinatakli/cinema-booking/internal/booking"
	"github.com/metinatakli/cinema-booking/internal/domain"
	appvalidator "github.com/metinatakli/cinema-booking/internal/validator"
)

const (
	ErrInternalServer      = "The server encountered a problem and could not process your request"
	ErrNotFound            = "The requested resource not found"
	ErrMethodNotAllowed    = "The %s method is not supported for this resource"
	ErrValidationFailed    = "One or more fields are invalid"
	ErrSeatAlreadyBooked   = "The seat is already booked for this movie session"
	ErrUsernameAlreadyUsed = "A user with this username already exists"
)

// referenceFields maps a missing entity to the request field that named it.
var referenceFields = map[string]string{
	domain.EntityActor:        "actorIds",
	domain.EntityGenre:        "genreIds",
	domain.EntityMovie:        "movieId",
	domain.EntityCinemaHall:   "cinemaHallId",
	domain.EntityMovieSession: "movieSessionId",
	domain.EntityOrder:        "orderId",
	domain.EntityUser:         "userId",
}

func (app *Application) logError(r *http.Request, err error) {
	app.contextGetLogger(r).ErrorContext(r.Context(), err.Error())
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, fmt.Sprintf(ErrMethodNotAllowed, r.Method))
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) conflictResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.errorResponse(w, r, http.StatusConflict, message)
}

func (app *Application) validationErrorResponse(w http.ResponseWriter, r *http.Request, errs []api.ValidationError) {
	resp := api.ValidationErrorResponse{
		Message:          ErrValidationFailed,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: errs,
	}

	err := app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// failedValidationResponse reports request DTO validation failures. Any
// other error is treated as a server error.
func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		app.serverErrorResponse(w, r, err)
		return
	}

	errs := make([]api.ValidationError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		errs = append(errs, api.ValidationError{
			Field: fieldPath(fieldErr),
			Issue: appvalidator.ValidationMessage(fieldErr),
		})
	}

	app.validationErrorResponse(w, r, errs)
}

// fieldPath strips the top level struct name from the namespace so nested
// fields read as tickets[0].movieSessionId.
func fieldPath(fieldErr validator.FieldError) string {
	_, path, found := strings.Cut(fieldErr.Namespace(), ".")
	if !found {
		return fieldErr.Field()
	}

	return path
}

// storageErrorResponse translates errors returned by repositories and the
// booking service into HTTP responses.
func (app *Application) storageErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrBoundsViolation), errors.Is(err, domain.ErrInvalidReference):
		app.validationErrorResponse(w, r, bookingValidationErrors(err, ""))
	case errors.Is(err, booking.ErrEmptyOrder):
		app.validationErrorResponse(w, r, []api.ValidationError{{Field: "tickets", Issue: err.Error()}})
	case errors.Is(err, domain.ErrSeatAlreadyBooked):
		app.conflictResponse(w, r, ErrSeatAlreadyBooked)
	case errors.Is(err, domain.ErrUserAlreadyExists):
		app.conflictResponse(w, r, ErrUsernameAlreadyUsed)
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

// bookingValidationErrors flattens bounds and reference failures, including
// the per ticket errors joined by an order, into field level issues.
func bookingValidationErrors(err error, prefix string) []api.ValidationError {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var errs []api.ValidationError
		for _, e := range joined.Unwrap() {
			errs = append(errs, bookingValidationErrors(e, prefix)...)
		}
		return errs
	}

	var ticketErr *booking.TicketError
	if errors.As(err, &ticketErr) {
		return bookingValidationErrors(ticketErr.Err, fmt.Sprintf("%stickets[%d].", prefix, ticketErr.Index))
	}

	var boundsErr *domain.BoundsError
	if errors.As(err, &boundsErr) {
		errs := make([]api.ValidationError, len(boundsErr.Violations))
		for i, v := range boundsErr.Violations {
			errs[i] = api.ValidationError{Field: prefix + v.Field, Issue: v.Message()}
		}
		return errs
	}

	var refErr *domain.ReferenceError
	if errors.As(err, &refErr) {
		field, ok := referenceFields[refErr.Entity]
		if !ok {
			field = "id"
		}
		return []api.ValidationError{{Field: prefix + field, Issue: refErr.Error()}}
	}

	return []api.ValidationError{{Field: prefix + "id", Issue: err.Error()}}
}
