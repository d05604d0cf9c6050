// Package view converts repository output into the plain-data shapes the
// pages consume. Three fidelity levels exist per entity: short ({id, name}),
// details (every editable field) and composite-with-shows (details plus the
// partitioned show history). No filtering or classification happens here;
// that is repository-layer work.
package view

import "github.com/iliyamo/booking-directory/internal/repository"

// ShortRecord is the minimal {id, name} projection used in search results
// and listings.
type ShortRecord struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// SearchResponse is the contract of the search endpoints: a match count and
// the short-form records.
type SearchResponse struct {
	Count int           `json:"count"`
	Data  []ShortRecord `json:"data"`
}

// VenueSummary is a venue entry inside a location group, carrying the count
// of shows starting after the reference time.
type VenueSummary struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// LocationGroup buckets venues sharing the exact (city, state) pair.
type LocationGroup struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueDetails carries every editable venue field, used for the detail page
// and for pre-populating the edit form.
type VenueDetails struct {
	ID                 uint64   `json:"id"`
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	WebsiteLink        string   `json:"website_link"`
	FacebookLink       string   `json:"facebook_link"`
	ImageLink          string   `json:"image_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

// VenuePage is the composite-with-shows view for the venue detail page.
type VenuePage struct {
	VenueDetails
	UpcomingShows      []repository.VenueShowRow `json:"upcoming_shows"`
	UpcomingShowsCount int                       `json:"upcoming_shows_count"`
	PastShows          []repository.VenueShowRow `json:"past_shows"`
	PastShowsCount     int                       `json:"past_shows_count"`
}

// VenueSearch shapes search hits into the {count, data} contract.
func VenueSearch(venues []*repository.Venue) SearchResponse {
	data := make([]ShortRecord, 0, len(venues))
	for _, v := range venues {
		data = append(data, ShortRecord{ID: v.ID, Name: v.Name})
	}
	return SearchResponse{Count: len(data), Data: data}
}

// locationKey is the composite grouping key. Two venues share a group only
// when both city and state match exactly; concatenating the strings would
// merge distinct pairs whose concatenations collide.
type locationKey struct {
	city  string
	state string
}

// GroupVenuesByLocation buckets venues by their exact (city, state) pair.
// Groups appear in first-seen order of distinct pairs and venues keep the
// order they arrived in, even when duplicate pairs are not adjacent in the
// input. upcoming maps venue id to its upcoming-show count; missing ids
// mean zero.
func GroupVenuesByLocation(venues []*repository.Venue, upcoming map[uint64]int) []LocationGroup {
	groups := make([]LocationGroup, 0)
	index := make(map[locationKey]int)
	for _, v := range venues {
		key := locationKey{city: v.City, state: v.State}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, LocationGroup{City: v.City, State: v.State})
		}
		groups[i].Venues = append(groups[i].Venues, VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: upcoming[v.ID],
		})
	}
	return groups
}

// VenueDetailsOf maps a venue row onto its full editable field set.
func VenueDetailsOf(v *repository.Venue) VenueDetails {
	return VenueDetails{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             v.Genres,
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		WebsiteLink:        v.WebsiteLink,
		FacebookLink:       v.FacebookLink,
		ImageLink:          v.ImageLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

// VenuePageOf assembles the composite detail page from the venue row and
// its already-partitioned show buckets.
func VenuePageOf(v *repository.Venue, upcoming, past []repository.VenueShowRow) VenuePage {
	return VenuePage{
		VenueDetails:       VenueDetailsOf(v),
		UpcomingShows:      upcoming,
		UpcomingShowsCount: len(upcoming),
		PastShows:          past,
		PastShowsCount:     len(past),
	}
}
