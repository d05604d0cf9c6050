// Shared fixtures for the repository tests. Tests run against an in-memory
// sqlite database; the repositories stick to portable SQL so the statements
// exercised here are the same ones MySQL runs in production.
package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
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

// openTestDB creates a fresh in-memory database with the directory schema.
// A single connection keeps the in-memory database alive for the whole test.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(testSchema)
	require.NoError(t, err)
	return db
}

// testVenue returns a fully populated venue for insert fixtures.
func testVenue(name, city, state string) *Venue {
	return &Venue{
		Name:               name,
		Genres:             []string{"Jazz", "Rock n Roll"},
		Address:            "1015 Folsom Street",
		City:               city,
		State:              state,
		Phone:              "123-123-1234",
		WebsiteLink:        "https://example.com",
		FacebookLink:       "https://facebook.com/example",
		ImageLink:          "https://example.com/venue.jpg",
		SeekingTalent:      true,
		SeekingDescription: "Looking for local acts",
	}
}

// testArtist returns a fully populated artist for insert fixtures.
func testArtist(name string) *Artist {
	return &Artist{
		Name:               name,
		Genres:             []string{"Blues"},
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		WebsiteLink:        "https://band.example.com",
		FacebookLink:       "https://facebook.com/band",
		ImageLink:          "https://example.com/band.jpg",
		SeekingVenue:       false,
		SeekingDescription: "",
	}
}

// insertShow is a raw fixture helper so show tests do not depend on the
// repository method under test.
func insertShow(t *testing.T, db *sql.DB, venueID, artistID uint64, startTime string) uint64 {
	t.Helper()
	res, err := db.ExecContext(context.Background(),
		`INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`,
		venueID, artistID, startTime)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return uint64(id)
}
