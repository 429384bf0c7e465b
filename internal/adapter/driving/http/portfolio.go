package httphandler

import (
	"net/http"
	"net/url"
	"time"

	"github.com/tashu/studio/internal/domain/model"
)

func portfolioPatchFromForm(form url.Values) model.PortfolioPatch {
	return model.PortfolioPatch{
		Title:       form.Get("title"),
		Description: form.Get("description"),
		Category:    form.Get("category"),
		Link:        form.Get("link"),
	}
}

// ListPortfolio returns the portfolio collection in insertion order.
func (h *Handler) ListPortfolio(w http.ResponseWriter, r *http.Request) {
	items, err := h.stores.Portfolio.List(r.Context())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// GetPortfolioItem returns a single portfolio item by id.
func (h *Handler) GetPortfolioItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.stores.Portfolio.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// CreatePortfolioItem appends a new portfolio item, storing an uploaded image
// when one rides along.
func (h *Handler) CreatePortfolioItem(w http.ResponseWriter, r *http.Request) {
	patch, err := decodeBody(r, portfolioPatchFromForm)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	image, err := h.saveImage(r)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	item := model.NewPortfolioItem(patch, image, time.Now().UTC())
	if err := h.stores.Portfolio.Append(r.Context(), item); err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dataResponse{Success: true, Data: item})
}

// UpdatePortfolioItem merges the supplied fields into an existing item.
// Empty fields keep their stored values.
func (h *Handler) UpdatePortfolioItem(w http.ResponseWriter, r *http.Request) {
	patch, err := decodeBody(r, portfolioPatchFromForm)
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
	item, err := h.stores.Portfolio.Update(r.Context(), r.PathValue("id"), func(it *model.PortfolioItem) {
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

	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: item})
}

// DeletePortfolioItem removes an item. Its uploaded image, if any, stays on
// disk.
func (h *Handler) DeletePortfolioItem(w http.ResponseWriter, r *http.Request) {
	if err := h.stores.Portfolio.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Success: true})
}
