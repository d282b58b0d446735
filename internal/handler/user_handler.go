package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/AbhradeepMukherjee/CalenderApp/internal/middleware"
	"github.com/AbhradeepMukherjee/CalenderApp/internal/model"
	"github.com/AbhradeepMukherjee/CalenderApp/internal/store"
)

type createUserRequest struct {
	FirebaseUID string `json:"firebaseUid" validate:"omitempty"`
	Name        string `json:"name" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
}

type userSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	subject := middleware.Subject(r.Context())

	var req createUserRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		log.Error().Err(err).Msg("Failed to decode signup payload")
		respondBadRequest(w, "Invalid request payload", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondBadRequest(w, "Invalid request payload", err)
		return
	}

	// the body may repeat the identity key, but the verified token decides it
	if req.FirebaseUID != "" && req.FirebaseUID != subject {
		respondMessage(w, http.StatusForbidden, "Identity key does not match token")
		return
	}

	if _, err := h.store.UserByFirebaseUID(r.Context(), subject); err == nil {
		respondMessage(w, http.StatusConflict, "User already exists")
		return
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Error().Err(err).Msg("Failed to look up user at signup")
		respondInternal(w, "Error creating user", err)
		return
	}

	u := &model.User{
		ID:          uuid.New().String(),
		FirebaseUID: subject,
		Name:        req.Name,
		Email:       req.Email,
	}
	if err := h.store.CreateUser(r.Context(), u); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			// lost the race with a concurrent signup for the same key
			respondMessage(w, http.StatusConflict, "User already exists")
			return
		}
		log.Error().Err(err).Msg("Failed to create user")
		respondInternal(w, "Error creating user", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    userSummary{ID: u.ID, Name: u.Name, Email: u.Email},
	})
}
