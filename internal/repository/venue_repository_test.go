package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueCreateAndGetRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewVenueRepo(db)
	ctx := context.Background()

	v := testVenue("The Fillmore", "San Francisco", "CA")
	require.NoError(t, repo.Create(ctx, v))
	require.NotZero(t, v.ID)

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	// Every field comes back exactly as submitted, genre order included.
	assert.Equal(t, v, got)
}

func TestVenueGetByIDNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewVenueRepo(db)

	_, err := repo.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestVenueSearchEmptyTermMatchesAll(t *testing.T) {
	db := openTestDB(t)
	repo := NewVenueRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testVenue("The Fillmore", "San Francisco", "CA")))
	require.NoError(t, repo.Create(ctx, testVenue("Park Square Live Music & Coffee", "San Francisco", "CA")))
	require.NoError(t, repo.Create(ctx, testVenue("The Dueling Pianos Bar", "New York", "NY")))

	got, err := repo.SearchByName(ctx, "")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestVenueSearchIsCaseInsensitiveSubstring(t *testing.T) {
	db := openTestDB(t)
	repo := NewVenueRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testVenue("The Fillmore", "San Francisco", "CA")))
	require.NoError(t, repo.Create(ctx, testVenue("The Dueling Pianos Bar", "New York", "NY")))

	got, err := repo.SearchByName(ctx, "fILLmo")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "The Fillmore", got[0].Name)

	none, err := repo.SearchByName(ctx, "zz-no-match-zz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestVenueUpdateOverwritesEveryField(t *testing.T) {
	db := openTestDB(t)
	repo := NewVenueRepo(db)
	ctx := context.Background()

	v := testVenue("The Fillmore", "San Francisco", "CA")
	require.NoError(t, repo.Create(ctx, v))

	// Full overwrite: the seeking flag resets to false because the caller
	// rebuilt the record without the checkbox token.
	updated := &Venue{
		ID:                 v.ID,
		Name:               "The Fillmore West",
		Genres:             []string{"Folk"},
		Address:            "99 New Street",
		City:               "Oakland",
		State:              "CA",
		Phone:              "555-000-1111",
		WebsiteLink:        "",
		FacebookLink:       "",
		ImageLink:          "",
		SeekingTalent:      false,
		SeekingDescription: "",
	}
	require.NoError(t, repo.Update(ctx, updated))

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
	assert.False(t, got.SeekingTalent)
}

func TestVenueUpdateIdenticalPayloadIsNotAnError(t *testing.T) {
	db := openTestDB(t)
	repo := NewVenueRepo(db)
	ctx := context.Background()

	v := testVenue("The Fillmore", "San Francisco", "CA")
	require.NoError(t, repo.Create(ctx, v))
	// Writing the exact same values affects zero rows on MySQL; that must
	// not be mistaken for a missing record.
	assert.NoError(t, repo.Update(ctx, v))
}

func TestVenueUpdateNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewVenueRepo(db)

	missing := testVenue("Ghost Venue", "Nowhere", "XX")
	missing.ID = 4242
	assert.ErrorIs(t, repo.Update(context.Background(), missing), ErrVenueNotFound)
}

func TestVenueDeleteMissingIDIsNoOp(t *testing.T) {
	db := openTestDB(t)
	repo := NewVenueRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testVenue("The Fillmore", "San Francisco", "CA")))
	require.NoError(t, repo.Delete(ctx, 9999))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestVenueDeleteCascadesToShows(t *testing.T) {
	db := openTestDB(t)
	venues := NewVenueRepo(db)
	artists := NewArtistRepo(db)
	ctx := context.Background()

	v := testVenue("The Fillmore", "San Francisco", "CA")
	require.NoError(t, venues.Create(ctx, v))
	a := testArtist("Test Band")
	require.NoError(t, artists.Create(ctx, a))
	insertShow(t, db, v.ID, a.ID, "2030-01-01 20:00:00")

	require.NoError(t, venues.Delete(ctx, v.ID))

	var showCount int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM shows`).Scan(&showCount))
	assert.Zero(t, showCount)
	_, err := venues.GetByID(ctx, v.ID)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestVenueCountUpcomingShows(t *testing.T) {
	db := openTestDB(t)
	venues := NewVenueRepo(db)
	artists := NewArtistRepo(db)
	ctx := context.Background()

	v1 := testVenue("The Fillmore", "San Francisco", "CA")
	v2 := testVenue("The Dueling Pianos Bar", "New York", "NY")
	require.NoError(t, venues.Create(ctx, v1))
	require.NoError(t, venues.Create(ctx, v2))
	a := testArtist("Test Band")
	require.NoError(t, artists.Create(ctx, a))

	now := "2026-06-01 12:00:00"
	insertShow(t, db, v1.ID, a.ID, "2026-06-01 12:00:01") // upcoming
	insertShow(t, db, v1.ID, a.ID, "2026-07-01 20:00:00") // upcoming
	insertShow(t, db, v1.ID, a.ID, "2026-06-01 12:00:00") // boundary: exactly now is past
	insertShow(t, db, v2.ID, a.ID, "2020-01-01 20:00:00") // past

	counts, err := venues.CountUpcomingShows(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[v1.ID])
	assert.Zero(t, counts[v2.ID])
}

func TestVenueGenresRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewVenueRepo(db)
	ctx := context.Background()

	v := testVenue("The Fillmore", "San Francisco", "CA")
	v.Genres = []string{"Jazz", "Jazz", "Classical"} // duplicates are kept
	require.NoError(t, repo.Create(ctx, v))

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jazz", "Jazz", "Classical"}, got.Genres)

	empty := testVenue("No Genres Yet", "Austin", "TX")
	empty.Genres = nil
	require.NoError(t, repo.Create(ctx, empty))
	got, err = repo.GetByID(ctx, empty.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Genres)
}
