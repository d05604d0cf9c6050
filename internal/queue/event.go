// Package queue defines message payloads exchanged over the message broker.
package queue

// VenueListedEvent is published when a venue is successfully listed. It
// carries enough for downstream consumers to notify or index without
// querying the primary database.
type VenueListedEvent struct {
	VenueID  uint64 `json:"venue_id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	State    string `json:"state"`
	ListedAt string `json:"listed_at"`
}

// ArtistListedEvent is published when an artist is successfully listed.
type ArtistListedEvent struct {
	ArtistID uint64 `json:"artist_id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	State    string `json:"state"`
	ListedAt string `json:"listed_at"`
}

// ShowListedEvent is published when a show is successfully listed.
type ShowListedEvent struct {
	ShowID    uint64 `json:"show_id"`
	VenueID   uint64 `json:"venue_id"`
	ArtistID  uint64 `json:"artist_id"`
	StartTime string `json:"start_time"`
	ListedAt  string `json:"listed_at"`
}
