// This file implements the artist endpoints. They mirror the venue
// endpoints: flat listing instead of location grouping, and the seeking
// flag points at venues rather than talent.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/booking-directory/internal/queue"
	"github.com/iliyamo/booking-directory/internal/repository"
	queue_publisher "github.com/iliyamo/booking-directory/internal/service"
	"github.com/iliyamo/booking-directory/internal/view"
)

// ArtistHandler aggregates the repositories serving the artist endpoints.
type ArtistHandler struct {
	ArtistRepo *repository.ArtistRepo
	ShowRepo   *repository.ShowRepo
	Events     *queue_publisher.Publisher
}

// ListArtists handles GET /v1/artists and returns the flat short-form
// listing in primary-key order.
func (h *ArtistHandler) ListArtists(c echo.Context) error {
	artists, err := h.ArtistRepo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"artists": view.ShortArtists(artists)})
}

// SearchArtists handles POST /v1/artists/search.
func (h *ArtistHandler) SearchArtists(c echo.Context) error {
	var body searchForm
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	artists, err := h.ArtistRepo.SearchByName(c.Request().Context(), body.SearchTerm)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, view.ArtistSearch(artists))
}

// GetArtist handles GET /v1/artists/:id and returns the composite detail
// page with the upcoming/past show buckets and counts.
func (h *ArtistHandler) GetArtist(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	a, err := h.ArtistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	rows, err := h.ShowRepo.ListByArtist(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	upcoming, past := repository.PartitionArtistShows(rows, repository.Now())
	return c.JSON(http.StatusOK, view.ArtistPageOf(a, upcoming, past))
}

// EditArtistForm handles GET /v1/artists/:id/edit and returns the full
// editable field set for pre-populating the edit form.
func (h *ArtistHandler) EditArtistForm(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	a, err := h.ArtistRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, view.ArtistDetailsOf(a))
}

// CreateArtist handles POST /v1/artists.
func (h *ArtistHandler) CreateArtist(c echo.Context) error {
	var body artistForm
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if strings.TrimSpace(body.City) == "" || strings.TrimSpace(body.State) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "city and state are required"})
	}
	a := artistFromForm(&body)
	a.Name = name
	if err := h.ArtistRepo.Create(c.Request().Context(), a); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": fmt.Sprintf("An error occurred. Artist %s could not be listed.", name),
		})
	}
	if h.Events != nil {
		_ = h.Events.ArtistListed(c.Request().Context(), queue.ArtistListedEvent{
			ArtistID: a.ID,
			Name:     a.Name,
			City:     a.City,
			State:    a.State,
			ListedAt: repository.Now(),
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":  fmt.Sprintf("Artist %s was successfully listed!", name),
		"artist":   view.ArtistDetailsOf(a),
		"redirect": "/",
	})
}

// UpdateArtist handles PUT /v1/artists/:id with full-overwrite semantics.
func (h *ArtistHandler) UpdateArtist(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body artistForm
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	a := artistFromForm(&body)
	a.ID = id
	a.Name = name
	if err := h.ArtistRepo.Update(c.Request().Context(), a); err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": fmt.Sprintf("An error occurred. Artist %s could not be updated.", name),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"artist":   view.ArtistDetailsOf(a),
		"redirect": fmt.Sprintf("/v1/artists/%d", id),
	})
}

// DeleteArtist handles DELETE /v1/artists/:id. No-op when the id does not
// exist.
func (h *ArtistHandler) DeleteArtist(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.ArtistRepo.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"redirect": "/"})
}

// artistFromForm applies the checkbox-default semantics shared by create
// and update.
func artistFromForm(body *artistForm) *repository.Artist {
	return &repository.Artist{
		Name:               body.Name,
		Genres:             body.Genres,
		City:               body.City,
		State:              body.State,
		Phone:              body.Phone,
		WebsiteLink:        body.WebsiteLink,
		FacebookLink:       body.FacebookLink,
		ImageLink:          body.ImageLink,
		SeekingVenue:       affirmative(body.SeekingVenue),
		SeekingDescription: body.SeekingDescription,
	}
}
