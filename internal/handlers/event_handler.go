package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/event"
	"github.com/brightpath-foundation/brightpath-api/internal/response"
	"github.com/brightpath-foundation/brightpath-api/internal/storage/postgres"
)

type EventHandler struct {
	eventRepo postgres.EventRepository
}

func NewEventHandler(eventRepo postgres.EventRepository) *EventHandler {
	return &EventHandler{
		eventRepo: eventRepo,
	}
}

type CreateEventRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Date         string   `json:"date" binding:"required"`
	Location     string   `json:"location"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
	MaxAttendees int      `json:"max_attendees"`
	Featured     bool     `json:"featured"`
}

// CreateEvent handles POST /api/admin/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "Invalid request payload: "+err.Error())
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		response.BadRequestError(c, "Invalid date format, expected RFC 3339 (e.g. 2026-03-14T18:00:00Z)")
		return
	}

	newEvent := event.NewEvent(req.Title, req.Description, date, req.Location, req.Category, req.MaxAttendees)
	newEvent.Tags = req.Tags
	newEvent.Featured = req.Featured

	if err := h.eventRepo.Create(newEvent); err != nil {
		response.InternalServerError(c, "Failed to create event")
		return
	}

	response.SuccessResponse(c, http.StatusCreated, "Event created", newEvent)
}

// GetAllEvents handles GET /api/events
func (h *EventHandler) GetAllEvents(c *gin.Context) {
	events, err := h.eventRepo.GetAll()
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve events")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", gin.H{
		"events": events,
		"count":  len(events),
	})
}

// GetUpcomingEvents handles GET /api/events/upcoming
func (h *EventHandler) GetUpcomingEvents(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequestError(c, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	events, err := h.eventRepo.GetUpcoming(limit)
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve upcoming events")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", gin.H{
		"events": events,
		"count":  len(events),
	})
}

// GetEvent handles GET /api/events/:event_id
func (h *EventHandler) GetEvent(c *gin.Context) {
	ev, err := h.eventRepo.GetByID(c.Param("event_id"))
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Event not found")
			return
		}
		response.InternalServerError(c, "Failed to retrieve event")
		return
	}

	spots, unlimited := ev.SpotsRemaining()
	response.SuccessResponse(c, http.StatusOK, "", gin.H{
		"event":           ev,
		"spots_remaining": spots,
		"unlimited":       unlimited,
		"upcoming":        ev.IsUpcoming(time.Now()),
		"days_until":      ev.DaysUntil(time.Now()),
	})
}

type UpdateEventRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Date         string   `json:"date" binding:"required"`
	Location     string   `json:"location"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
	MaxAttendees int      `json:"max_attendees"`
	Featured     bool     `json:"featured"`
}

// UpdateEvent handles PUT /api/admin/events/:event_id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "Invalid request payload: "+err.Error())
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		response.BadRequestError(c, "Invalid date format, expected RFC 3339")
		return
	}

	ev, err := h.eventRepo.GetByID(c.Param("event_id"))
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Event not found")
			return
		}
		response.InternalServerError(c, "Failed to retrieve event")
		return
	}

	ev.Title = req.Title
	ev.Description = req.Description
	ev.Date = date
	ev.Location = req.Location
	ev.Category = req.Category
	ev.Tags = req.Tags
	ev.MaxAttendees = req.MaxAttendees
	ev.Featured = req.Featured

	if err := h.eventRepo.Update(ev); err != nil {
		response.InternalServerError(c, "Failed to update event")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Event updated", ev)
}

// DeleteEvent handles DELETE /api/admin/events/:event_id.
// Registrations belonging to the event are removed in the same transaction.
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.eventRepo.Delete(c.Param("event_id")); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Event not found")
			return
		}
		response.InternalServerError(c, "Failed to delete event")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Event deleted", nil)
}
