package httphandler

import (
	"net/http"
	"net/url"
	"time"

	"github.com/tashu/studio/internal/domain/model"
)

func storyPatchFromForm(form url.Values) model.StoryPatch {
	return model.StoryPatch{
		Title:   form.Get("title"),
		Content: form.Get("content"),
	}
}

// ListStories returns the stories collection with rendered HTML bodies.
func (h *Handler) ListStories(w http.ResponseWriter, r *http.Request) {
	items, err := h.stores.Stories.List(r.Context())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	resp := make([]StoryResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, toStoryResponse(it))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetStory returns a single story by id with its rendered HTML body.
func (h *Handler) GetStory(w http.ResponseWriter, r *http.Request) {
	item, err := h.stores.Stories.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toStoryResponse(*item))
}

// CreateStory appends a new story, storing an uploaded image when one rides
// along. The body is stored as written; rendering happens on read.
func (h *Handler) CreateStory(w http.ResponseWriter, r *http.Request) {
	patch, err := decodeBody(r, storyPatchFromForm)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	image, err := h.saveImage(r)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	item := model.NewStoryItem(patch, image, time.Now().UTC())
	if err := h.stores.Stories.Append(r.Context(), item); err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dataResponse{Success: true, Data: toStoryResponse(item)})
}

// UpdateStory merges the supplied fields into an existing story.
func (h *Handler) UpdateStory(w http.ResponseWriter, r *http.Request) {
	patch, err := decodeBody(r, storyPatchFromForm)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	image, err := h.saveImage(r)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	now := time.Now().UTC()
	item, err := h.stores.Stories.Update(r.Context(), r.PathValue("id"), func(it *model.StoryItem) {
		patch.Apply(it)
		if image != "" {
			it.Image = image
		}
		it.UpdatedAt = now
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: toStoryResponse(*item)})
}

// DeleteStory removes a story.
func (h *Handler) DeleteStory(w http.ResponseWriter, r *http.Request) {
	if err := h.stores.Stories.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Success: true})
}
