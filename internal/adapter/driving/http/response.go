package httphandler

import (
	"encoding/json"
	"net/http"

	"github.com/tashu/studio/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// statusResponse acknowledges a mutation that returns no record.
type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// dataResponse wraps a created or updated record.
type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// LoginResponse is the JSON body of a successful login.
type LoginResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username"`
}

// CheckResponse is the JSON body of the session check endpoint.
type CheckResponse struct {
	IsLoggedIn bool   `json:"isLoggedIn"`
	Username   string `json:"username,omitempty"`
}

// StoryResponse is a story record enriched with its rendered HTML body.
type StoryResponse struct {
	model.StoryItem
	ContentHTML string `json:"contentHtml"`
}

// toStoryResponse renders the stored markdown body to sanitized HTML.
func toStoryResponse(s model.StoryItem) StoryResponse {
	return StoryResponse{
		StoryItem:   s,
		ContentHTML: renderMarkdown(s.Content),
	}
}

// LikeResponse is the JSON body of the like endpoint.
type LikeResponse struct {
	Success    bool `json:"success"`
	Likes      int  `json:"likes"`
	TotalLikes int  `json:"totalLikes"`
}

// CommentResponse is the JSON body of the comment endpoint.
type CommentResponse struct {
	Success       bool          `json:"success"`
	Comment       model.Comment `json:"comment"`
	TotalComments int           `json:"totalComments"`
}
