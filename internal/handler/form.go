// Package handler exposes the HTTP handlers of the booking directory. This
// file defines the inbound payload shapes shared by the create and edit
// endpoints and the helpers that interpret them.
package handler

import "strings"

// venueForm binds a venue create/edit payload. Both JSON and HTML-form
// encodings are accepted. The seeking flag arrives as a checkbox-style
// token: only an affirmative value turns it on, absence always means false.
type venueForm struct {
	Name               string   `json:"name" form:"name"`
	Genres             []string `json:"genres" form:"genres"`
	Address            string   `json:"address" form:"address"`
	City               string   `json:"city" form:"city"`
	State              string   `json:"state" form:"state"`
	Phone              string   `json:"phone" form:"phone"`
	WebsiteLink        string   `json:"website_link" form:"website_link"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link"`
	ImageLink          string   `json:"image_link" form:"image_link"`
	SeekingTalent      string   `json:"seeking_talent" form:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description"`
}

// artistForm binds an artist create/edit payload.
type artistForm struct {
	Name               string   `json:"name" form:"name"`
	Genres             []string `json:"genres" form:"genres"`
	City               string   `json:"city" form:"city"`
	State              string   `json:"state" form:"state"`
	Phone              string   `json:"phone" form:"phone"`
	WebsiteLink        string   `json:"website_link" form:"website_link"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link"`
	ImageLink          string   `json:"image_link" form:"image_link"`
	SeekingVenue       string   `json:"seeking_venue" form:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description"`
}

// searchForm binds the search term for the venue and artist search
// endpoints. An empty term matches everything.
type searchForm struct {
	SearchTerm string `json:"search_term" form:"search_term" query:"search_term"`
}

// affirmative reports whether a checkbox-style field carries the token that
// turns the flag on. Anything else, including absence, means false.
func affirmative(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "yes", "true", "1", "on":
		return true
	}
	return false
}
