package app

import (
	"net/http"

	"github.com/metinatakli/cinema-booking/api"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	pageParams, err := app.readPageParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	params := api.GetMoviesParams{
		Page:     pageParams.Page,
		PageSize: pageParams.PageSize,
	}
	if title := r.URL.Query().Get("title"); title != "" {
		params.Title = &title
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), toMovieFilters(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	summaries := make([]api.MovieSummary, len(movies))
	for i, movie := range movies {
		summaries[i] = api.MovieSummary{
			Id:          movie.ID,
			Title:       movie.Title,
			Description: movie.Description,
		}
	}

	resp := api.MovieListResponse{
		Movies:   summaries,
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieRequest

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

	movie := domain.Movie{
		Title:       input.Title,
		Description: input.Description,
		Actors:      make([]domain.Actor, len(input.ActorIds)),
		Genres:      make([]domain.Genre, len(input.GenreIds)),
	}
	for i, id := range input.ActorIds {
		movie.Actors[i] = domain.Actor{ID: id}
	}
	for i, id := range input.GenreIds {
		movie.Genres[i] = domain.Genre{ID: id}
	}

	err = app.movieRepo.Create(r.Context(), &movie)
	if err != nil {
		app.storageErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toMovieResponse(&movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		app.storageErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteMovie removes the movie along with its sessions and their tickets.
func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.movieRepo.Delete(r.Context(), id)
	if err != nil {
		app.storageErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toMovieFilters(params api.GetMoviesParams) domain.MovieFilters {
	filters := domain.MovieFilters{
		Pagination: toPagination(api.PageParams{Page: params.Page, PageSize: params.PageSize}),
	}

	if params.Title != nil {
		filters.Title = *params.Title
	}

	return filters
}

func toMovieResponse(movie *domain.Movie) api.MovieResponse {
	resp := api.MovieResponse{
		Id:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Actors:      make([]api.ActorResponse, len(movie.Actors)),
		Genres:      make([]api.GenreResponse, len(movie.Genres)),
	}

	for i, actor := range movie.Actors {
		resp.Actors[i] = toActorResponse(actor)
	}
	for i, genre := range movie.Genres {
		resp.Genres[i] = toGenreResponse(genre)
	}

	return resp
}
