// File: internal/handlers/assistant_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/visionary-ai/medassist/internal/middleware"
	"github.com/visionary-ai/medassist/internal/services"
	"github.com/visionary-ai/medassist/internal/services/location"
	"github.com/visionary-ai/medassist/internal/services/provider"
)

type AssistantHandler struct {
	Service *services.AssistantService
}

func NewAssistantHandler(svc *services.AssistantService) (*AssistantHandler, error) {
	if svc == nil {
		return nil, services.NewValidationError("new_handler", "assistant service is required")
	}
	return &AssistantHandler{Service: svc}, nil
}

// CreateChat opens a new consultation thread.
func (h *AssistantHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Category string `json:"category"`
		Title    string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Category == "" {
		writeError(w, "Bad Request", http.StatusBadRequest)
		return
	}

	chat, err := h.Service.CreateChat(r.Context(), userID, req.Category, req.Title)
	if err != nil {
		writeError(w, "Could not create chat", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, chat)
}

// GetChatMessages returns the ordered transcript of a chat.
func (h *AssistantHandler) GetChatMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Service.Messages(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "Could not retrieve messages", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// PostMessage appends a user message to the chat.
func (h *AssistantHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content  string `json:"content"`
		ImageRef string `json:"image_ref"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || (req.Content == "" && req.ImageRef == "") {
		writeError(w, "Bad Request", http.StatusBadRequest)
		return
	}

	msg, err := h.Service.SendUserMessage(r.Context(), mux.Vars(r)["id"], req.Content, req.ImageRef)
	if err != nil {
		writeError(w, "Could not store message", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

// PostAssistantMessage records a responder message. Exposed on the internal
// surface the care-team backend calls, never to end users.
func (h *AssistantHandler) PostAssistantMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AuthorLabel string `json:"author_label"`
		Content     string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" {
		writeError(w, "Bad Request", http.StatusBadRequest)
		return
	}

	msg, err := h.Service.AddAssistantMessage(r.Context(), mux.Vars(r)["id"], req.AuthorLabel, req.Content)
	if err != nil {
		writeError(w, "Could not store message", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

// GetSummary returns the chat's current clinical summary. Always 200: before
// the first generation this is the default summary.
func (h *AssistantHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.Summary(mux.Vars(r)["id"]))
}

// FindCare runs the specialty-to-provider search for a chat. An optional
// postal_code query parameter supplies a manually entered ZIP.
func (h *AssistantHandler) FindCare(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	chatID := mux.Vars(r)["id"]

	var options *services.CareOptions
	var err error
	if postal := r.URL.Query().Get("postal_code"); postal != "" {
		options, err = h.Service.FindCareAtPostalCode(r.Context(), userID, chatID, postal)
	} else {
		options, err = h.Service.FindCare(r.Context(), userID, chatID)
	}

	if err != nil {
		switch {
		case location.IsPermissionDenied(err):
			writeError(w, "Location unavailable; provide a 5-digit ZIP code via postal_code", http.StatusUnprocessableEntity)
		case provider.IsNoResults(err):
			writeError(w, "No providers found for this specialty in your area", http.StatusNotFound)
		default:
			var le *location.LocationError
			if errors.As(err, &le) && le.Type == location.ErrTypeValidation {
				writeError(w, le.Message, http.StatusBadRequest)
				return
			}
			writeError(w, "Could not complete care search", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, options)
}

// GetUserChats lists the caller's consultation threads.
func (h *AssistantHandler) GetUserChats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	chats, err := h.Service.Chats(r.Context(), userID)
	if err != nil {
		writeError(w, "Could not retrieve chats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, chats)
}

// UpdatePostalCode stores a manually entered ZIP on the caller's profile.
func (h *AssistantHandler) UpdatePostalCode(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		PostalCode string `json:"postal_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Bad Request", http.StatusBadRequest)
		return
	}

	resolved, err := h.Service.SetPostalCode(r.Context(), userID, req.PostalCode)
	if err != nil {
		var le *location.LocationError
		if errors.As(err, &le) && le.Type == location.ErrTypeValidation {
			writeError(w, le.Message, http.StatusBadRequest)
			return
		}
		writeError(w, "Could not save postal code", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, resolved)
}

// DeleteChat removes a chat and its messages.
func (h *AssistantHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.Service.DeleteChat(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		writeError(w, "Could not delete chat", http.StatusForbidden)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeJSON is a helper for sending JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError sends a JSON error body with the given status.
func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}
