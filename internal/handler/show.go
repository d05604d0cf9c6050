// This file implements the show endpoints: the fully joined listing and
// show creation. Shows have no edit or delete endpoint; they only come and
// go with their owners.
package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/booking-directory/internal/queue"
	"github.com/iliyamo/booking-directory/internal/repository"
	queue_publisher "github.com/iliyamo/booking-directory/internal/service"
)

// ShowHandler aggregates the repositories serving the show endpoints. The
// venue and artist repos are needed to validate both foreign keys before
// inserting.
type ShowHandler struct {
	ShowRepo   *repository.ShowRepo
	VenueRepo  *repository.VenueRepo
	ArtistRepo *repository.ArtistRepo
	Events     *queue_publisher.Publisher
}

// ListShows handles GET /v1/shows and returns every show with both the
// venue and artist names joined in, no time filtering.
func (h *ShowHandler) ListShows(c echo.Context) error {
	shows, err := h.ShowRepo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if shows == nil {
		shows = []repository.ShowListing{}
	}
	return c.JSON(http.StatusOK, echo.Map{"shows": shows})
}

// CreateShow handles POST /v1/shows. Both referenced rows must exist and
// the start time must parse; the timestamp is normalized to the DB format
// before insert. Accepts RFC 3339 or the DB format itself.
func (h *ShowHandler) CreateShow(c echo.Context) error {
	ctx := c.Request().Context()
	var body struct {
		VenueID   uint64 `json:"venue_id" form:"venue_id"`
		ArtistID  uint64 `json:"artist_id" form:"artist_id"`
		StartTime string `json:"start_time" form:"start_time"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.VenueID == 0 || body.ArtistID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "venue_id and artist_id are required"})
	}
	startTime, err := parseStartTime(strings.TrimSpace(body.StartTime))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start_time format"})
	}
	if _, err := h.VenueRepo.GetByID(ctx, body.VenueID); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "venue does not exist"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if _, err := h.ArtistRepo.GetByID(ctx, body.ArtistID); err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "artist does not exist"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	show := &repository.Show{
		VenueID:   body.VenueID,
		ArtistID:  body.ArtistID,
		StartTime: startTime,
	}
	if err := h.ShowRepo.Create(ctx, show); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "An error occurred. Show could not be listed.",
		})
	}
	if h.Events != nil {
		_ = h.Events.ShowListed(ctx, queue.ShowListedEvent{
			ShowID:    show.ID,
			VenueID:   show.VenueID,
			ArtistID:  show.ArtistID,
			StartTime: show.StartTime,
			ListedAt:  repository.Now(),
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Show was successfully listed!",
		"show":    show,
	})
}

// parseStartTime accepts RFC 3339 or the DB format and returns the DB
// format string stored with the show.
func parseStartTime(s string) (string, error) {
	if s == "" {
		return "", errors.New("start_time is required")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Format(repository.TimeLayout), nil
	}
	t, err := time.Parse(repository.TimeLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(repository.TimeLayout), nil
}
