// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/booking-directory/internal/handler"
)

// RegisterRoutes registers the health check on the provided Echo instance.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterDirectory registers the venue, artist and show endpoints under
// /v1. Search endpoints are POST because the term travels in the request
// body, matching the submitted search forms.
func RegisterDirectory(e *echo.Echo, v *handler.VenueHandler, a *handler.ArtistHandler, s *handler.ShowHandler) {
	g := e.Group("/v1")

	// Venues: grouped listing, search, composite detail, lifecycle.
	g.GET("/venues", v.ListVenues)
	g.POST("/venues/search", v.SearchVenues)
	g.GET("/venues/:id", v.GetVenue)
	g.GET("/venues/:id/edit", v.EditVenueForm)
	g.POST("/venues", v.CreateVenue)
	g.PUT("/venues/:id", v.UpdateVenue)
	g.DELETE("/venues/:id", v.DeleteVenue)

	// Artists: flat listing, search, composite detail, lifecycle.
	g.GET("/artists", a.ListArtists)
	g.POST("/artists/search", a.SearchArtists)
	g.GET("/artists/:id", a.GetArtist)
	g.GET("/artists/:id/edit", a.EditArtistForm)
	g.POST("/artists", a.CreateArtist)
	g.PUT("/artists/:id", a.UpdateArtist)
	g.DELETE("/artists/:id", a.DeleteArtist)

	// Shows: insert-only association records plus the joined listing.
	g.GET("/shows", s.ListShows)
	g.POST("/shows", s.CreateShow)
}
