// Shared fixtures for the handler tests: an echo instance backed by an
// in-memory sqlite database wearing the directory schema. Requests are
// driven through httptest so binding, status mapping and response shaping
// are exercised end to end.
package handler

import (
	"database/sql"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/iliyamo/booking-directory/internal/repository"
)

const testSchema = `
CREATE TABLE venues (
    id                  INTEGER PRIMARY KEY AUTOINCREMENT,
    name                TEXT NOT NULL,
    genres              TEXT NOT NULL DEFAULT '',
    address             TEXT NOT NULL DEFAULT '',
    city                TEXT NOT NULL DEFAULT '',
    state               TEXT NOT NULL DEFAULT '',
    phone               TEXT NOT NULL DEFAULT '',
    website_link        TEXT NOT NULL DEFAULT '',
    facebook_link       TEXT NOT NULL DEFAULT '',
    image_link          TEXT NOT NULL DEFAULT '',
    seeking_talent      INTEGER NOT NULL DEFAULT 0,
    seeking_description TEXT NOT NULL DEFAULT ''
);
CREATE TABLE artists (
    id                  INTEGER PRIMARY KEY AUTOINCREMENT,
    name                TEXT NOT NULL,
    genres              TEXT NOT NULL DEFAULT '',
    city                TEXT NOT NULL DEFAULT '',
    state               TEXT NOT NULL DEFAULT '',
    phone               TEXT NOT NULL DEFAULT '',
    website_link        TEXT NOT NULL DEFAULT '',
    facebook_link       TEXT NOT NULL DEFAULT '',
    image_link          TEXT NOT NULL DEFAULT '',
    seeking_venue       INTEGER NOT NULL DEFAULT 0,
    seeking_description TEXT NOT NULL DEFAULT ''
);
CREATE TABLE shows (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    venue_id   INTEGER NOT NULL REFERENCES venues(id),
    artist_id  INTEGER NOT NULL REFERENCES artists(id),
    start_time TEXT NOT NULL
);
`

// testEnv bundles the echo instance and handlers under test.
type testEnv struct {
	e       *echo.Echo
	db      *sql.DB
	venues  *VenueHandler
	artists *ArtistHandler
	shows   *ShowHandler
}

// newTestEnv wires handlers against a fresh in-memory database. No event
// publisher is attached; the handlers treat that as "publishing disabled".
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	venueRepo := repository.NewVenueRepo(db)
	artistRepo := repository.NewArtistRepo(db)
	showRepo := repository.NewShowRepo(db)

	return &testEnv{
		e:       echo.New(),
		db:      db,
		venues:  &VenueHandler{VenueRepo: venueRepo, ShowRepo: showRepo},
		artists: &ArtistHandler{ArtistRepo: artistRepo, ShowRepo: showRepo},
		shows:   &ShowHandler{ShowRepo: showRepo, VenueRepo: venueRepo, ArtistRepo: artistRepo},
	}
}

// request performs one JSON request against a handler and returns the
// recorder. Path params are applied to the context before the handler runs.
func (env *testEnv) request(t *testing.T, method string, body any, h echo.HandlerFunc, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, "/", reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	require.NoError(t, h(c))
	return rec
}

// decode unmarshals a recorded JSON body into out.
func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// mustStatus asserts the recorded status code.
func mustStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}
