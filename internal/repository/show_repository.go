// This file defines the Show model and repository methods for shows. A Show
// is a pure association record between one venue and one artist at a start
// time; it is never meaningful on its own, so every listing joins in the
// counterparty's name and image.
// NOTE: Time strings are stored in DB format "2006-01-02 15:04:05" (UTC).
package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Show represents a scheduled performance linking a venue and an artist.
type Show struct {
	ID        uint64 `json:"id"`         // shows.id
	VenueID   uint64 `json:"venue_id"`   // shows.venue_id (required FK)
	ArtistID  uint64 `json:"artist_id"`  // shows.artist_id (required FK)
	StartTime string `json:"start_time"` // shows.start_time ("YYYY-MM-DD HH:MM:SS" UTC)
}

// VenueShowRow is a show seen from its venue: the artist side is
// denormalized for the venue detail page.
type VenueShowRow struct {
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ArtistShowRow is a show seen from its artist: the venue side is
// denormalized for the artist detail page.
type ArtistShowRow struct {
	VenueID        uint64 `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ShowListing is a fully joined show row for the shows page.
type ShowListing struct {
	VenueID         uint64 `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show and assigns the generated ID back to the show
// struct. The caller must have validated that both referenced rows exist;
// the insert itself is a single atomic statement.
func (r *ShowRepo) Create(ctx context.Context, s *Show) error {
	const q = `INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.VenueID, s.ArtistID, s.StartTime)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// GetByID retrieves a show by its ID. It returns ErrShowNotFound if there
// is no matching row.
func (r *ShowRepo) GetByID(ctx context.Context, id uint64) (*Show, error) {
	const q = `SELECT id, venue_id, artist_id, start_time FROM shows WHERE id = ?`
	var s Show
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.VenueID, &s.ArtistID, &s.StartTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListByVenue returns every show at the given venue with the artist's name
// and image joined in, ordered by start time ascending. A venue with no
// shows yields an empty slice and nil error; venue existence is the
// caller's concern.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID uint64) ([]VenueShowRow, error) {
	const q = `SELECT s.artist_id, a.name, a.image_link, s.start_time
	           FROM shows s
	           JOIN artists a ON a.id = s.artist_id
	           WHERE s.venue_id = ?
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []VenueShowRow
	for rows.Next() {
		var row VenueShowRow
		if err := rows.Scan(&row.ArtistID, &row.ArtistName, &row.ArtistImageLink, &row.StartTime); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListByArtist returns every show by the given artist with the venue's name
// and image joined in, ordered by start time ascending.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID uint64) ([]ArtistShowRow, error) {
	const q = `SELECT s.venue_id, v.name, v.image_link, s.start_time
	           FROM shows s
	           JOIN venues v ON v.id = s.venue_id
	           WHERE s.artist_id = ?
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ArtistShowRow
	for rows.Next() {
		var row ArtistShowRow
		if err := rows.Scan(&row.VenueID, &row.VenueName, &row.VenueImageLink, &row.StartTime); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListAll returns every show with both the venue and artist joined in, no
// time filtering, ordered by start time ascending.
func (r *ShowRepo) ListAll(ctx context.Context) ([]ShowListing, error) {
	const q = `SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
	           FROM shows s
	           JOIN venues v ON v.id = s.venue_id
	           JOIN artists a ON a.id = s.artist_id
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ShowListing
	for rows.Next() {
		var row ShowListing
		if err := rows.Scan(&row.VenueID, &row.VenueName, &row.ArtistID, &row.ArtistName, &row.ArtistImageLink, &row.StartTime); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
