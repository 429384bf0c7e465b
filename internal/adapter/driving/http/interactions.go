package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/tashu/studio/internal/domain/model"
)

// The interaction mirror is advisory: the public site keeps working when the
// store fails, so handlers here log the error and answer with a zero-valued
// success payload instead of a 500.

type likeRequest struct {
	ImageKey string `json:"imageKey"`
	Liked    bool   `json:"liked"`
}

type commentRequest struct {
	ImageKey string `json:"imageKey"`
	Comment  struct {
		Username string `json:"username"`
		Text     string `json:"text"`
	} `json:"comment"`
}

// GetImageInteractions returns the mirrored likes and comments of one image.
// Unknown images yield an empty state.
func (h *Handler) GetImageInteractions(w http.ResponseWriter, r *http.Request) {
	state, err := h.interactions.GetImage(r.Context(), r.PathValue("imageKey"))
	if err != nil {
		h.logger.Warn("interaction mirror read failed", "error", err)
		state = model.ImageInteractions{Comments: []model.Comment{}}
	}
	writeJSON(w, http.StatusOK, state)
}

// LikeImage records a like or unlike against the mirror.
func (h *Handler) LikeImage(w http.ResponseWriter, r *http.Request) {
	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ImageKey == "" {
		writeError(w, http.StatusBadRequest, "imageKey is required")
		return
	}

	tally, err := h.interactions.ApplyLike(r.Context(), req.ImageKey, req.Liked)
	if err != nil {
		h.logger.Warn("interaction mirror like failed", "imageKey", req.ImageKey, "error", err)
	}

	writeJSON(w, http.StatusOK, LikeResponse{
		Success:    true,
		Likes:      tally.Likes,
		TotalLikes: tally.TotalLikes,
	})
}

// CommentImage records a visitor comment against the mirror. Text is stripped
// of markup before it is stored.
func (h *Handler) CommentImage(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ImageKey == "" || req.Comment.Username == "" || req.Comment.Text == "" {
		writeError(w, http.StatusBadRequest, "imageKey, username and text are required")
		return
	}

	comment := model.Comment{
		ID:        model.NewID(),
		Username:  sanitizeText(req.Comment.Username),
		Text:      sanitizeText(req.Comment.Text),
		CreatedAt: time.Now().UTC(),
	}

	total, err := h.interactions.AddComment(r.Context(), req.ImageKey, comment)
	if err != nil {
		h.logger.Warn("interaction mirror comment failed", "imageKey", req.ImageKey, "error", err)
	}

	writeJSON(w, http.StatusOK, CommentResponse{
		Success:       true,
		Comment:       comment,
		TotalComments: total,
	})
}

// InteractionStats aggregates the mirror across all images.
func (h *Handler) InteractionStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.interactions.Stats(r.Context())
	if err != nil {
		h.logger.Warn("interaction mirror stats failed", "error", err)
		stats = model.InteractionStats{}
	}
	writeJSON(w, http.StatusOK, stats)
}
