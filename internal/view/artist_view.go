// Artist-side view models and assembly. Mirrors the venue views: the short
// and search shapes are shared, only the details and composite page differ.
package view

import "github.com/iliyamo/booking-directory/internal/repository"

// ArtistDetails carries every editable artist field.
type ArtistDetails struct {
	ID                 uint64   `json:"id"`
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	WebsiteLink        string   `json:"website_link"`
	FacebookLink       string   `json:"facebook_link"`
	ImageLink          string   `json:"image_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

// ArtistPage is the composite-with-shows view for the artist detail page.
type ArtistPage struct {
	ArtistDetails
	UpcomingShows      []repository.ArtistShowRow `json:"upcoming_shows"`
	UpcomingShowsCount int                        `json:"upcoming_shows_count"`
	PastShows          []repository.ArtistShowRow `json:"past_shows"`
	PastShowsCount     int                        `json:"past_shows_count"`
}

// ShortArtists projects artists onto {id, name} records for the flat
// artists listing.
func ShortArtists(artists []*repository.Artist) []ShortRecord {
	out := make([]ShortRecord, 0, len(artists))
	for _, a := range artists {
		out = append(out, ShortRecord{ID: a.ID, Name: a.Name})
	}
	return out
}

// ArtistSearch shapes search hits into the {count, data} contract.
func ArtistSearch(artists []*repository.Artist) SearchResponse {
	return SearchResponse{Count: len(artists), Data: ShortArtists(artists)}
}

// ArtistDetailsOf maps an artist row onto its full editable field set.
func ArtistDetailsOf(a *repository.Artist) ArtistDetails {
	return ArtistDetails{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             a.Genres,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		WebsiteLink:        a.WebsiteLink,
		FacebookLink:       a.FacebookLink,
		ImageLink:          a.ImageLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

// ArtistPageOf assembles the composite detail page from the artist row and
// its already-partitioned show buckets.
func ArtistPageOf(a *repository.Artist, upcoming, past []repository.ArtistShowRow) ArtistPage {
	return ArtistPage{
		ArtistDetails:      ArtistDetailsOf(a),
		UpcomingShows:      upcoming,
		UpcomingShowsCount: len(upcoming),
		PastShows:          past,
		PastShowsCount:     len(past),
	}
}
