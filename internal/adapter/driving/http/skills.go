package httphandler

import (
	"net/http"
	"net/url"
	"time"

	"github.com/tashu/studio/internal/domain/model"
)

func skillPatchFromForm(form url.Values) model.SkillPatch {
	return model.SkillPatch{
		Name:  form.Get("name"),
		Level: intField(form, "level"),
	}
}

// ListSkills returns the skills collection in insertion order.
func (h *Handler) ListSkills(w http.ResponseWriter, r *http.Request) {
	items, err := h.stores.Skills.List(r.Context())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// GetSkill returns a single skill by id.
func (h *Handler) GetSkill(w http.ResponseWriter, r *http.Request) {
	item, err := h.stores.Skills.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// CreateSkill appends a new skill. A missing level falls back to the default.
func (h *Handler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	patch, err := decodeBody(r, skillPatchFromForm)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item := model.NewSkillItem(patch, time.Now().UTC())
	if err := h.stores.Skills.Append(r.Context(), item); err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dataResponse{Success: true, Data: item})
}

// UpdateSkill merges the supplied fields into an existing skill. An explicit
// zero level is applied; an omitted one keeps the stored value.
func (h *Handler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	patch, err := decodeBody(r, skillPatchFromForm)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	now := time.Now().UTC()
	item, err := h.stores.Skills.Update(r.Context(), r.PathValue("id"), func(it *model.SkillItem) {
		patch.Apply(it)
		it.UpdatedAt = now
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: item})
}

// DeleteSkill removes a skill.
func (h *Handler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	if err := h.stores.Skills.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Success: true})
}
