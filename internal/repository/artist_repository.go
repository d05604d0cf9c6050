// This file defines the Artist model and repository methods for CRUD and
// search lookups. An Artist owns zero or more shows via shows.artist_id. The
// methods mirror the venue repository; artists have no street address and
// their seeking flag points the other way (an artist seeks a venue).
package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Artist represents an artist entity persisted in the database.
type Artist struct {
	ID                 uint64   // artists.id
	Name               string   // artists.name
	Genres             []string // artists.genres (comma-separated column)
	City               string   // artists.city
	State              string   // artists.state
	Phone              string   // artists.phone
	WebsiteLink        string   // artists.website_link
	FacebookLink       string   // artists.facebook_link
	ImageLink          string   // artists.image_link
	SeekingVenue       bool     // artists.seeking_venue
	SeekingDescription string   // artists.seeking_description
}

// ArtistRepo encapsulates all database queries related to artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the provided DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

const artistColumns = `id, name, genres, city, state, phone, website_link, facebook_link, image_link, seeking_venue, seeking_description`

func scanArtist(row interface{ Scan(dest ...any) error }) (*Artist, error) {
	var a Artist
	var genres string
	if err := row.Scan(&a.ID, &a.Name, &genres, &a.City, &a.State, &a.Phone,
		&a.WebsiteLink, &a.FacebookLink, &a.ImageLink, &a.SeekingVenue, &a.SeekingDescription); err != nil {
		return nil, err
	}
	a.Genres = splitGenres(genres)
	return &a, nil
}

// Create inserts a new artist and populates its generated ID.
func (r *ArtistRepo) Create(ctx context.Context, a *Artist) error {
	const q = `INSERT INTO artists (name, genres, city, state, phone, website_link, facebook_link, image_link, seeking_venue, seeking_description)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		a.Name, joinGenres(a.Genres), a.City, a.State, a.Phone,
		a.WebsiteLink, a.FacebookLink, a.ImageLink, a.SeekingVenue, a.SeekingDescription)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// GetByID fetches an artist by its ID, returning ErrArtistNotFound when no
// row matches.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*Artist, error) {
	const q = `SELECT ` + artistColumns + ` FROM artists WHERE id = ?`
	a, err := scanArtist(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return a, nil
}

// ListAll returns every artist ordered by id. Used by the flat artists page.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]*Artist, error) {
	const q = `SELECT ` + artistColumns + ` FROM artists ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByName returns artists whose name contains the term, compared
// case-insensitively. An empty term matches every artist.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string) ([]*Artist, error) {
	const q = `SELECT ` + artistColumns + ` FROM artists WHERE LOWER(name) LIKE ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, likePattern(term))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites every editable field unconditionally, mirroring the
// venue repository's full-record replacement semantics. ErrArtistNotFound
// is returned when the id matches no row.
func (r *ArtistRepo) Update(ctx context.Context, a *Artist) error {
	const q = `UPDATE artists
	           SET name = ?, genres = ?, city = ?, state = ?, phone = ?,
	               website_link = ?, facebook_link = ?, image_link = ?,
	               seeking_venue = ?, seeking_description = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		a.Name, joinGenres(a.Genres), a.City, a.State, a.Phone,
		a.WebsiteLink, a.FacebookLink, a.ImageLink, a.SeekingVenue, a.SeekingDescription,
		a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM artists WHERE id = ? LIMIT 1`, a.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrArtistNotFound
		}
		return err
	}
	return nil // row exists but values were already identical
}

// Delete removes an artist and cascades to its shows within one
// transaction. Deleting an id that does not exist is a no-op.
func (r *ArtistRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE artist_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id); err != nil {
		return err
	}
	return nil
}
