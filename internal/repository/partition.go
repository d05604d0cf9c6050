// This file holds the upcoming/past classification for an owner's shows.
// Classification is computed at query time against a caller-supplied
// reference timestamp, never stored. Timestamps travel as zero-padded
// "2006-01-02 15:04:05" strings, so lexicographic comparison is exactly
// chronological comparison and no parsing is needed here.
package repository

import "time"

// TimeLayout is the DB timestamp format used everywhere in this package.
// It doubles as the display format required by the pages.
const TimeLayout = "2006-01-02 15:04:05"

// Now returns the current UTC time in TimeLayout, the reference timestamp
// for upcoming/past classification.
func Now() string {
	return time.Now().UTC().Format(TimeLayout)
}

// PartitionVenueShows splits a venue's shows into upcoming (start_time
// strictly after now) and past (start_time at or before now). Every input
// row lands in exactly one of the two results and relative order is kept.
// Both slices are non-nil so empty buckets serialize as [] rather than null.
func PartitionVenueShows(rows []VenueShowRow, now string) (upcoming, past []VenueShowRow) {
	upcoming = make([]VenueShowRow, 0, len(rows))
	past = make([]VenueShowRow, 0, len(rows))
	for _, row := range rows {
		if row.StartTime > now {
			upcoming = append(upcoming, row)
		} else {
			past = append(past, row)
		}
	}
	return upcoming, past
}

// PartitionArtistShows is the artist-side counterpart of
// PartitionVenueShows.
func PartitionArtistShows(rows []ArtistShowRow, now string) (upcoming, past []ArtistShowRow) {
	upcoming = make([]ArtistShowRow, 0, len(rows))
	past = make([]ArtistShowRow, 0, len(rows))
	for _, row := range rows {
		if row.StartTime > now {
			upcoming = append(upcoming, row)
		} else {
			past = append(past, row)
		}
	}
	return upcoming, past
}
