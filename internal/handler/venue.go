// This file implements the venue endpoints: the location-grouped listing,
// name search, the composite detail page, and create/edit/delete. Repo
// sentinel errors are translated into status codes here; persistence
// failures surface as a user-visible message naming the venue.
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

// VenueHandler aggregates the repositories serving the venue endpoints.
// Events may be nil, in which case no listing events are published.
type VenueHandler struct {
	VenueRepo *repository.VenueRepo
	ShowRepo  *repository.ShowRepo
	Events    *queue_publisher.Publisher
}

// ListVenues handles GET /v1/venues. Venues are grouped by their exact
// (city, state) pair, each entry carrying the count of shows starting
// after the current time.
func (h *VenueHandler) ListVenues(c echo.Context) error {
	ctx := c.Request().Context()
	venues, err := h.VenueRepo.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	counts, err := h.VenueRepo.CountUpcomingShows(ctx, repository.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"areas": view.GroupVenuesByLocation(venues, counts)})
}

// SearchVenues handles POST /v1/venues/search. The term is matched
// case-insensitively against the venue name; an empty term matches all.
func (h *VenueHandler) SearchVenues(c echo.Context) error {
	var body searchForm
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	venues, err := h.VenueRepo.SearchByName(c.Request().Context(), body.SearchTerm)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, view.VenueSearch(venues))
}

// GetVenue handles GET /v1/venues/:id and returns the composite detail
// page: full venue fields plus the upcoming/past show buckets and counts.
func (h *VenueHandler) GetVenue(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.VenueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	rows, err := h.ShowRepo.ListByVenue(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	upcoming, past := repository.PartitionVenueShows(rows, repository.Now())
	return c.JSON(http.StatusOK, view.VenuePageOf(v, upcoming, past))
}

// EditVenueForm handles GET /v1/venues/:id/edit and returns the full
// editable field set for pre-populating the edit form.
func (h *VenueHandler) EditVenueForm(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.VenueRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, view.VenueDetailsOf(v))
}

// CreateVenue handles POST /v1/venues. Required fields are checked before
// any write; optional fields default (seeking_talent false unless the
// affirmative token is present, seeking_description empty).
func (h *VenueHandler) CreateVenue(c echo.Context) error {
	var body venueForm
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
	v := venueFromForm(&body)
	v.Name = name
	if err := h.VenueRepo.Create(c.Request().Context(), v); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": fmt.Sprintf("An error occurred. Venue %s could not be listed.", name),
		})
	}
	if h.Events != nil {
		// Best-effort event: a broker outage must not fail the listing.
		_ = h.Events.VenueListed(c.Request().Context(), queue.VenueListedEvent{
			VenueID:  v.ID,
			Name:     v.Name,
			City:     v.City,
			State:    v.State,
			ListedAt: repository.Now(),
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":  fmt.Sprintf("Venue %s was successfully listed!", name),
		"venue":    view.VenueDetailsOf(v),
		"redirect": "/",
	})
}

// UpdateVenue handles PUT /v1/venues/:id. Every editable field is
// overwritten from the payload, including resetting the seeking flag to
// false when its token is absent. 404 when the venue does not exist.
func (h *VenueHandler) UpdateVenue(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body venueForm
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	v := venueFromForm(&body)
	v.ID = id
	v.Name = name
	if err := h.VenueRepo.Update(c.Request().Context(), v); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": fmt.Sprintf("An error occurred. Venue %s could not be updated.", name),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"venue":    view.VenueDetailsOf(v),
		"redirect": fmt.Sprintf("/v1/venues/%d", id),
	})
}

// DeleteVenue handles DELETE /v1/venues/:id. The venue and its shows are
// removed together; deleting an id that does not exist is a no-op and
// still redirects home.
func (h *VenueHandler) DeleteVenue(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.VenueRepo.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"redirect": "/"})
}

// venueFromForm applies the checkbox-default semantics shared by create and
// update. Name trimming is left to the callers since they also validate it.
func venueFromForm(body *venueForm) *repository.Venue {
	return &repository.Venue{
		Name:               body.Name,
		Genres:             body.Genres,
		Address:            body.Address,
		City:               body.City,
		State:              body.State,
		Phone:              body.Phone,
		WebsiteLink:        body.WebsiteLink,
		FacebookLink:       body.FacebookLink,
		ImageLink:          body.ImageLink,
		SeekingTalent:      affirmative(body.SeekingTalent),
		SeekingDescription: body.SeekingDescription,
	}
}
