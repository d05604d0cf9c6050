// This file defines the Venue model and repository methods for CRUD, search
// and aggregation lookups. A Venue owns zero or more shows via shows.venue_id.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used for sentinel comparisons
)

// Venue represents a venue entity persisted in the database. Genres is kept
// as a string slice in memory and flattened to one column on write. The ID
// field is the primary key and is auto-incremented by the DB.
type Venue struct {
	ID                 uint64   // venues.id
	Name               string   // venues.name
	Genres             []string // venues.genres (comma-separated column)
	Address            string   // venues.address
	City               string   // venues.city
	State              string   // venues.state
	Phone              string   // venues.phone
	WebsiteLink        string   // venues.website_link
	FacebookLink       string   // venues.facebook_link
	ImageLink          string   // venues.image_link
	SeekingTalent      bool     // venues.seeking_talent
	SeekingDescription string   // venues.seeking_description
}

// VenueRepo encapsulates all database queries related to venues. It depends
// on a sql.DB connection which should be configured elsewhere.
type VenueRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle. This
// allows dependency injection of the database in tests and at startup.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// venueColumns is the column list shared by every venue SELECT so scans stay
// in one order across methods.
const venueColumns = `id, name, genres, address, city, state, phone, website_link, facebook_link, image_link, seeking_talent, seeking_description`

// scanVenue reads one venue row in venueColumns order.
func scanVenue(row interface{ Scan(dest ...any) error }) (*Venue, error) {
	var v Venue
	var genres string
	if err := row.Scan(&v.ID, &v.Name, &genres, &v.Address, &v.City, &v.State, &v.Phone,
		&v.WebsiteLink, &v.FacebookLink, &v.ImageLink, &v.SeekingTalent, &v.SeekingDescription); err != nil {
		return nil, err
	}
	v.Genres = splitGenres(genres)
	return &v, nil
}

// Create inserts a new venue. On success the venue's ID field is populated
// with the auto-generated value. The insert is a single statement, so a
// failure leaves no partial write behind.
func (r *VenueRepo) Create(ctx context.Context, v *Venue) error {
	const q = `INSERT INTO venues (name, genres, address, city, state, phone, website_link, facebook_link, image_link, seeking_talent, seeking_description)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		v.Name, joinGenres(v.Genres), v.Address, v.City, v.State, v.Phone,
		v.WebsiteLink, v.FacebookLink, v.ImageLink, v.SeekingTalent, v.SeekingDescription)
	if err != nil {
		return err // propagate DB errors to the caller
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// GetByID fetches a venue by its ID. It returns ErrVenueNotFound when no
// row matches, so callers can tell a missing venue apart from a DB failure.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues WHERE id = ?`
	v, err := scanVenue(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}

// ListAll returns every venue ordered by id. The grouped venues page is
// assembled from this result; grouping itself happens in the view layer with
// a composite (city, state) key so result order never affects correctness.
func (r *VenueRepo) ListAll(ctx context.Context) ([]*Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByName returns venues whose name contains the term, compared
// case-insensitively. An empty term matches every venue. No ranking is
// applied; rows come back in primary-key order.
func (r *VenueRepo) SearchByName(ctx context.Context, term string) ([]*Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues WHERE LOWER(name) LIKE ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, likePattern(term))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountUpcomingShows returns, for every venue that has at least one show
// starting strictly after now, the number of such shows keyed by venue id.
// Venues absent from the map have zero upcoming shows.
func (r *VenueRepo) CountUpcomingShows(ctx context.Context, now string) (map[uint64]int, error) {
	const q = `SELECT venue_id, COUNT(*) FROM shows WHERE start_time > ? GROUP BY venue_id`
	rows, err := r.db.QueryContext(ctx, q, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[uint64]int)
	for rows.Next() {
		var id uint64
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// Update overwrites every editable field of the venue unconditionally. This
// is full-record replacement: callers must supply the complete field set,
// including seeking flags that reset to false when absent from the request.
// ErrVenueNotFound is returned when the id matches no row. A zero affected
// count alone does not imply a missing row (an identical payload also
// affects nothing), so existence is re-checked before failing.
func (r *VenueRepo) Update(ctx context.Context, v *Venue) error {
	const q = `UPDATE venues
	           SET name = ?, genres = ?, address = ?, city = ?, state = ?, phone = ?,
	               website_link = ?, facebook_link = ?, image_link = ?,
	               seeking_talent = ?, seeking_description = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		v.Name, joinGenres(v.Genres), v.Address, v.City, v.State, v.Phone,
		v.WebsiteLink, v.FacebookLink, v.ImageLink, v.SeekingTalent, v.SeekingDescription,
		v.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ? LIMIT 1`, v.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVenueNotFound
		}
		return err
	}
	return nil // row exists but values were already identical
}

// Delete removes a venue and cascades to its shows within one transaction,
// so a failure mid-way leaves both tables untouched. Deleting an id that
// does not exist is a no-op, not an error.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) error {
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
	// A show without its venue is meaningless, so dependent shows go first.
	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id); err != nil {
		return err
	}
	return nil
}
