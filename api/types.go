// Package api holds the JSON payloads exchanged over the HTTP surface.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type PageParams struct {
	Page     *int `validate:"omitempty,min=1"`
	PageSize *int `validate:"omitempty,min=1,max=100"`
}

type CreateGenreRequest struct {
	Name string `json:"name" validate:"required,notblank,max=255"`
}

type GenreResponse struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type CreateActorRequest struct {
	FirstName string `json:"firstName" validate:"required,notblank,max=255"`
	LastName  string `json:"lastName" validate:"required,notblank,max=255"`
}

type ActorResponse struct {
	Id        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
}

type CreateMovieRequest struct {
	Title       string `json:"title" validate:"required,notblank,max=255"`
	Description string `json:"description"`
	ActorIds    []int  `json:"actorIds" validate:"dive,min=1"`
	GenreIds    []int  `json:"genreIds" validate:"dive,min=1"`
}

type GetMoviesParams struct {
	Page     *int    `validate:"omitempty,min=1"`
	PageSize *int    `validate:"omitempty,min=1,max=100"`
	Title    *string `validate:"omitempty,max=255"`
}

type MovieSummary struct {
	Id          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type MovieResponse struct {
	Id          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Actors      []ActorResponse `json:"actors"`
	Genres      []GenreResponse `json:"genres"`
}

type MovieListResponse struct {
	Movies   []MovieSummary `json:"movies"`
	Metadata *Metadata      `json:"metadata,omitempty"`
}

type CreateCinemaHallRequest struct {
	Name       string `json:"name" validate:"required,notblank,max=255"`
	Rows       int    `json:"rows" validate:"required,min=1,max=1000"`
	SeatsInRow int    `json:"seatsInRow" validate:"required,min=1,max=1000"`
}

type CinemaHallResponse struct {
	Id         int    `json:"id"`
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seatsInRow"`
	Capacity   int    `json:"capacity"`
}

type CreateMovieSessionRequest struct {
	ShowTime     time.Time `json:"showTime" validate:"required"`
	MovieId      int       `json:"movieId" validate:"required,min=1"`
	CinemaHallId int       `json:"cinemaHallId" validate:"required,min=1"`
}

type MovieSessionResponse struct {
	Id         int                `json:"id"`
	ShowTime   time.Time          `json:"showTime"`
	MovieId    int                `json:"movieId"`
	CinemaHall CinemaHallResponse `json:"cinemaHall"`
}

type TakenSeat struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type MovieSessionTicketsResponse struct {
	MovieSessionId int         `json:"movieSessionId"`
	Capacity       int         `json:"capacity"`
	Available      int         `json:"available"`
	TakenSeats     []TakenSeat `json:"takenSeats"`
}

type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,notblank,max=150"`
	Email     string `json:"email" validate:"omitempty,email,max=254"`
	FirstName string `json:"firstName" validate:"max=150"`
	LastName  string `json:"lastName" validate:"max=150"`
}

type UserResponse struct {
	Id         int       `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	IsStaff    bool      `json:"isStaff"`
	IsActive   bool      `json:"isActive"`
	DateJoined time.Time `json:"dateJoined"`
}

// TicketRequest carries no bounds tags on Row and Seat; those are checked
// against the hall of the movie session.
type TicketRequest struct {
	MovieSessionId int `json:"movieSessionId" validate:"required,min=1"`
	OrderId        int `json:"orderId" validate:"required,min=1"`
	Row            int `json:"row"`
	Seat           int `json:"seat"`
}

type OrderTicketRequest struct {
	MovieSessionId int `json:"movieSessionId" validate:"required,min=1"`
	Row            int `json:"row"`
	Seat           int `json:"seat"`
}

type CreateOrderRequest struct {
	UserId  int                  `json:"userId" validate:"required,min=1"`
	Tickets []OrderTicketRequest `json:"tickets" validate:"required,min=1,dive"`
}

type TicketResponse struct {
	Id             int `json:"id"`
	MovieSessionId int `json:"movieSessionId"`
	OrderId        int `json:"orderId"`
	Row            int `json:"row"`
	Seat           int `json:"seat"`
}

type OrderResponse struct {
	Id        int              `json:"id"`
	UserId    int              `json:"userId"`
	CreatedAt time.Time        `json:"createdAt"`
	Tickets   []TicketResponse `json:"tickets"`
}

type OrderListResponse struct {
	Orders   []OrderResponse `json:"orders"`
	Metadata *Metadata       `json:"metadata,omitempty"`
}
