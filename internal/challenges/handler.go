package challenges

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/studyforge/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

func (h *Handler) GenerateForNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	noteID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid note ID"})
		return
	}

	// An empty body means defaults.
	var req models.GenerateChallengesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Difficulty != "" && !models.ValidDifficulties[req.Difficulty] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "difficulty must be 'easy', 'medium', or 'hard'"})
		return
	}

	resp, err := h.service.GenerateForNote(r.Context(), userID, noteID, req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate challenges"})
		return
	}
	if resp == nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Note not found"})
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) ListForNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	noteID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid note ID"})
		return
	}

	resp, err := h.service.ListForNote(userID, noteID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list challenges"})
		return
	}
	if resp == nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Note not found"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
