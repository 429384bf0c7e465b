package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/tashu/studio/internal/domain/model"
)

type createMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ListMessages returns every contact message, oldest first. Admin only.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	items, err := h.stores.Messages.List(r.Context())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateMessage accepts a public contact-form submission. All three fields
// are required; text is stripped of markup before it is stored.
func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req createMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "name, email and message are required")
		return
	}

	msg := model.NewMessage(
		sanitizeText(req.Name),
		sanitizeText(req.Email),
		sanitizeText(req.Message),
		time.Now().UTC(),
	)
	if err := h.stores.Messages.Append(r.Context(), msg); err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, statusResponse{Success: true, Message: "message received"})
}

// MarkMessageRead flags a message as read. Re-marking a read message
// succeeds.
func (h *Handler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	_, err := h.stores.Messages.Update(r.Context(), r.PathValue("id"), func(m *model.Message) {
		m.Read = true
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Success: true})
}

// DeleteMessage removes a message.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	if err := h.stores.Messages.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Success: true})
}
