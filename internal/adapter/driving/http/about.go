package httphandler

import (
	"net/http"
	"net/url"
	"time"

	"github.com/tashu/studio/internal/domain/model"
)

func aboutPatchFromForm(form url.Values) model.AboutPatch {
	return model.AboutPatch{
		Name:     form.Get("name"),
		Title:    form.Get("title"),
		Bio:      form.Get("bio"),
		Location: form.Get("location"),
	}
}

func settingsPatchFromForm(form url.Values) model.SettingsPatch {
	return model.SettingsPatch{
		StoriesHeading:   form.Get("storiesHeading"),
		PortfolioHeading: form.Get("portfolioHeading"),
		ServicesHeading:  form.Get("servicesHeading"),
		SkillsHeading:    form.Get("skillsHeading"),
		ContactHeading:   form.Get("contactHeading"),
	}
}

// GetAbout returns the about document. A fresh deployment yields the zero
// document, not an error.
func (h *Handler) GetAbout(w http.ResponseWriter, r *http.Request) {
	doc, err := h.stores.About.Get(r.Context())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// UpdateAbout merges the supplied fields into the about document, storing an
// uploaded portrait when one rides along.
func (h *Handler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	patch, err := decodeBody(r, aboutPatchFromForm)
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
	doc, err := h.stores.About.Update(r.Context(), func(d *model.AboutDocument) {
		patch.Apply(d)
		if image != "" {
			d.Image = image
		}
		d.UpdatedAt = now
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: doc})
}

// GetSettings returns the site-settings document.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	doc, err := h.stores.Settings.Get(r.Context())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// UpdateSettings merges the supplied headings into the settings document.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	patch, err := decodeBody(r, settingsPatchFromForm)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	now := time.Now().UTC()
	doc, err := h.stores.Settings.Update(r.Context(), func(d *model.SettingsDocument) {
		patch.Apply(d)
		d.UpdatedAt = now
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: doc})
}

// RestoreDefaults replaces every content collection with the bundled seed
// data. Messages are untouched.
func (h *Handler) RestoreDefaults(w http.ResponseWriter, r *http.Request) {
	if err := h.restore.Restore(r.Context()); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Success: true, Message: "defaults restored"})
}
