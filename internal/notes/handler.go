package notes

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/studyforge/backend/internal/models"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "title is required"})
		return
	}
	if req.FileType == "" {
		req.FileType = models.FileTypeText
	}
	if !models.ValidFileTypes[req.FileType] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "file_type must be 'text', 'pdf', 'audio', or 'image'"})
		return
	}

	note, err := h.store.CreateNote(userID, req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create note"})
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	notes, err := h.store.ListNotes(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list notes"})
		return
	}
	writeJSON(w, http.StatusOK, models.NoteListResponse{Notes: notes, Total: len(notes)})
}

func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	id, err := noteIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid note ID"})
		return
	}

	note, err := h.store.GetNote(id, userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load note"})
		return
	}
	if note == nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Note not found"})
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	id, err := noteIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid note ID"})
		return
	}

	var req models.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "title cannot be empty"})
		return
	}

	note, err := h.store.UpdateNote(id, userID, req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update note"})
		return
	}
	if note == nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Note not found"})
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	id, err := noteIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid note ID"})
		return
	}

	deleted, err := h.store.DeleteNote(id, userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete note"})
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Note not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func noteIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
