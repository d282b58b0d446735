package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/AbhradeepMukherjee/CalenderApp/internal/daterange"
	"github.com/AbhradeepMukherjee/CalenderApp/internal/middleware"
	"github.com/AbhradeepMukherjee/CalenderApp/internal/model"
	"github.com/AbhradeepMukherjee/CalenderApp/internal/store"
)

type eventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate" validate:"required"`
	EndDate     time.Time `json:"endDate" validate:"required"`
	StartTime   time.Time `json:"startTime" validate:"required"`
	EndTime     time.Time `json:"endTime" validate:"required"`
	IsAllDay    bool      `json:"isAllDay"`
	Recurrence  bool      `json:"recurrence"`
}

// owner resolves the verified subject to its user record. Every event
// operation goes through here first; an unresolvable owner is a 404 before
// any event is touched.
func (h *Handler) owner(w http.ResponseWriter, r *http.Request) (*model.User, bool) {
	subject := middleware.Subject(r.Context())
	u, err := h.store.UserByFirebaseUID(r.Context(), subject)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			respondMessage(w, http.StatusNotFound, "User not found")
		} else {
			log.Error().Err(err).Msg("Failed to resolve event owner")
			respondInternal(w, "Error fetching events", err)
		}
		return nil, false
	}
	return u, true
}

func (h *Handler) decodeEvent(w http.ResponseWriter, r *http.Request) (*eventRequest, bool) {
	var req eventRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		log.Error().Err(err).Msg("Failed to decode event payload")
		respondBadRequest(w, "Invalid request payload", err)
		return nil, false
	}
	if err := h.validate.Struct(req); err != nil {
		respondBadRequest(w, "Invalid request payload", err)
		return nil, false
	}
	return &req, true
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	u, ok := h.owner(w, r)
	if !ok {
		return
	}

	events, err := h.store.ListEvents(r.Context(), u.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", u.ID).Msg("Failed to list events")
		respondInternal(w, "Error fetching events", err)
		return
	}
	respondJSON(w, http.StatusOK, events)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	u, ok := h.owner(w, r)
	if !ok {
		return
	}

	event, err := h.store.EventByID(r.Context(), chi.URLParam(r, "id"), u.ID)
	if err != nil {
		if errors.Is(err, store.ErrEventNotFound) {
			respondMessage(w, http.StatusNotFound, "Event not found")
			return
		}
		log.Error().Err(err).Str("user_id", u.ID).Msg("Failed to fetch event")
		respondInternal(w, "Error fetching event", err)
		return
	}
	respondJSON(w, http.StatusOK, event)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	u, ok := h.owner(w, r)
	if !ok {
		return
	}
	req, ok := h.decodeEvent(w, r)
	if !ok {
		return
	}

	event := &model.Event{
		ID:          uuid.New().String(),
		UserID:      u.ID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAllDay:    req.IsAllDay,
		Recurrence:  req.Recurrence,
	}
	if err := h.store.CreateEvent(r.Context(), event); err != nil {
		log.Error().Err(err).Str("user_id", u.ID).Msg("Failed to create event")
		respondInternal(w, "Error creating event", err)
		return
	}
	respondJSON(w, http.StatusCreated, event)
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	u, ok := h.owner(w, r)
	if !ok {
		return
	}
	req, ok := h.decodeEvent(w, r)
	if !ok {
		return
	}

	event := &model.Event{
		ID:          chi.URLParam(r, "id"),
		UserID:      u.ID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAllDay:    req.IsAllDay,
		Recurrence:  req.Recurrence,
	}
	if err := h.store.UpdateEvent(r.Context(), event); err != nil {
		if errors.Is(err, store.ErrEventNotFound) {
			// foreign ownership and nonexistence answer identically
			respondMessage(w, http.StatusNotFound, "Event not found or you don't have permission to update it")
			return
		}
		log.Error().Err(err).Str("user_id", u.ID).Msg("Failed to update event")
		respondInternal(w, "Error updating event", err)
		return
	}
	respondMessage(w, http.StatusOK, "Event updated successfully")
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	u, ok := h.owner(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteEvent(r.Context(), chi.URLParam(r, "id"), u.ID); err != nil {
		if errors.Is(err, store.ErrEventNotFound) {
			respondMessage(w, http.StatusNotFound, "Event not found or you don't have permission to delete it")
			return
		}
		log.Error().Err(err).Str("user_id", u.ID).Msg("Failed to delete event")
		respondInternal(w, "Error deleting event", err)
		return
	}
	respondMessage(w, http.StatusOK, "Event deleted successfully")
}

func (h *Handler) EventsByDate(w http.ResponseWriter, r *http.Request) {
	rng, err := daterange.Day(chi.URLParam(r, "date"))
	if err != nil {
		respondBadRequest(w, "Invalid date format", nil)
		return
	}
	h.eventsInRange(w, r, rng, "No events found for this date")
}

func (h *Handler) EventsByWeek(w http.ResponseWriter, r *http.Request) {
	rng, err := daterange.Week(chi.URLParam(r, "startOfWeek"))
	if err != nil {
		respondBadRequest(w, "Invalid date format", nil)
		return
	}
	h.eventsInRange(w, r, rng, "No events found for this week")
}

func (h *Handler) EventsByMonth(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "monthNumber"))
	if err != nil {
		respondBadRequest(w, "Invalid month number", nil)
		return
	}
	rng, err := daterange.Month(n, time.Now())
	if err != nil {
		respondBadRequest(w, "Invalid month number", nil)
		return
	}
	h.eventsInRange(w, r, rng, "No events found for this month")
}

// eventsInRange answers 404 when nothing matches; only the plain list
// endpoint returns an empty array.
func (h *Handler) eventsInRange(w http.ResponseWriter, r *http.Request, rng daterange.Range, emptyMsg string) {
	u, ok := h.owner(w, r)
	if !ok {
		return
	}

	events, err := h.store.EventsInRange(r.Context(), u.ID, rng)
	if err != nil {
		log.Error().Err(err).Str("user_id", u.ID).Msg("Failed to query events in range")
		respondInternal(w, "Error fetching events", err)
		return
	}
	if len(events) == 0 {
		respondMessage(w, http.StatusNotFound, emptyMsg)
		return
	}
	respondJSON(w, http.StatusOK, events)
}
