package httphandler

import (
	"net/http"
	"net/url"
	"time"

	"github.com/tashu/studio/internal/domain/model"
)

func servicePatchFromForm(form url.Values) model.ServicePatch {
	return model.ServicePatch{
		Name:        form.Get("name"),
		Description: form.Get("description"),
		Icon:        form.Get("icon"),
	}
}

// ListServices returns the services collection in insertion order.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	items, err := h.stores.Services.List(r.Context())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// GetService returns a single service by id.
func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	item, err := h.stores.Services.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// CreateService appends a new service.
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	patch, err := decodeBody(r, servicePatchFromForm)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item := model.NewServiceItem(patch, time.Now().UTC())
	if err := h.stores.Services.Append(r.Context(), item); err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dataResponse{Success: true, Data: item})
}

// UpdateService merges the supplied fields into an existing service.
func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	patch, err := decodeBody(r, servicePatchFromForm)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	now := time.Now().UTC()
	item, err := h.stores.Services.Update(r.Context(), r.PathValue("id"), func(it *model.ServiceItem) {
		patch.Apply(it)
		it.UpdatedAt = now
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: item})
}

// DeleteService removes a service.
func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	if err := h.stores.Services.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Success: true})
}
