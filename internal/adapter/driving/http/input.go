package httphandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// maxUploadBytes caps multipart request bodies, image file included.
const maxUploadBytes = 5 << 20

// decodeBody parses the payload of a create or update request. The admin panel
// sends JSON for text-only edits and multipart form data when an image rides
// along; both shapes decode to the same patch type. fromForm maps the form
// field names onto the patch.
func decodeBody[T any](r *http.Request, fromForm func(url.Values) T) (T, error) {
	var v T
	ct := r.Header.Get("Content-Type")

	switch {
	case strings.HasPrefix(ct, "multipart/form-data"):
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return v, err
		}
		return fromForm(r.PostForm), nil
	case strings.HasPrefix(ct, "application/x-www-form-urlencoded"):
		if err := r.ParseForm(); err != nil {
			return v, err
		}
		return fromForm(r.PostForm), nil
	default:
		if err := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxUploadBytes)).Decode(&v); err != nil {
			return v, err
		}
		return v, nil
	}
}

// saveImage stores the uploaded "image" part, if any, and returns its public
// path. JSON requests and multipart requests without an image part return ""
// with no error.
func (h *Handler) saveImage(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	return h.assets.Save(r.Context(), header.Filename, file)
}

// intField parses an optional integer form field. Absent or malformed values
// come back nil, matching an omitted JSON field.
func intField(form url.Values, name string) *int {
	raw := form.Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
