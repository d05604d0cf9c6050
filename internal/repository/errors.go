// Package repository contains data access logic separated from HTTP handlers.
// This file defines sentinel error values reused across the venue, artist and
// show repositories. Handlers use these to distinguish a missing record (a
// 404-equivalent) from an empty-but-valid result set such as a venue that
// simply has no shows yet.
package repository

import "errors"

// ErrVenueNotFound is returned when a venue lookup by id matches no row.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when an artist lookup by id matches no row.
var ErrArtistNotFound = errors.New("artist not found")

// ErrShowNotFound is returned when a show lookup by id matches no row.
var ErrShowNotFound = errors.New("show not found")
