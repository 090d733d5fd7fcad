package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var testShowTime = time.Date(2024, 3, 15, 19, 0, 0, 0, time.UTC)

var keysToIgnore = map[string]struct{}{
	"timestamp":  {},
	"requestId":  {},
	"createdAt":  {},
	"dateJoined": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		switch nested := m[k].(type) {
		case map[string]any:
			cleanMap(nested)
		case []any:
			for _, item := range nested {
				if itemMap, ok := item.(map[string]any); ok {
					cleanMap(itemMap)
				}
			}
		}
	}
}

func truncateAll(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), `
		TRUNCATE genres, actors, movies, cinema_halls, movie_sessions, users, orders, tickets
		RESTART IDENTITY CASCADE
	`)
	require.NoError(t, err)
}

func insertHall(t testing.TB, db *pgxpool.Pool, name string, rows, seatsInRow int) int {
	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO cinema_halls (name, seat_rows, seats_in_row) VALUES ($1, $2, $3) RETURNING id`,
		name, rows, seatsInRow).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertMovie(t testing.TB, db *pgxpool.Pool, title string) int {
	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO movies (title, description) VALUES ($1, '') RETURNING id`, title).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertSession(t testing.TB, db *pgxpool.Pool, movieId, hallId int) int {
	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO movie_sessions (show_time, movie_id, cinema_hall_id) VALUES ($1, $2, $3) RETURNING id`,
		testShowTime, movieId, hallId).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertUser(t testing.TB, db *pgxpool.Pool, username string) int {
	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO users (username, email, first_name, last_name, is_staff, is_active)
		 VALUES ($1, '', '', '', false, true) RETURNING id`, username).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertOrder(t testing.TB, db *pgxpool.Pool, userId int) int {
	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO orders (user_id) VALUES ($1) RETURNING id`, userId).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertTicket(t testing.TB, db *pgxpool.Pool, sessionId, orderId, row, seat int) int {
	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO tickets (movie_session_id, order_id, seat_row, seat) VALUES ($1, $2, $3, $4) RETURNING id`,
		sessionId, orderId, row, seat).Scan(&id)
	require.NoError(t, err)

	return id
}

func countRows(t testing.TB, db *pgxpool.Pool, table string) int {
	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(t, err)

	return n
}

func newRecorder(method, collection string, id int) (*httptest.ResponseRecorder, *http.Request) {
	req := httptest.NewRequest(method, fmt.Sprintf("%s/%d", collection, id), nil)
	return httptest.NewRecorder(), req
}
