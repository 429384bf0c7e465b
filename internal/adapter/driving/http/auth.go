package httphandler

import (
	"encoding/json"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type changeUsernameRequest struct {
	NewUsername string `json:"newUsername"`
	Password    string `json:"password"`
}

// Login authenticates the admin and issues a session cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	// Email logins still bind the session to the stored username.
	username, _ := h.auth.Check(token)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, LoginResponse{Success: true, Username: username})
}

// Logout drops the session and clears the cookie. Succeeds even without a
// live session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := sessionToken(r); token != "" {
		h.auth.Logout(token)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, statusResponse{Success: true})
}

// Check reports whether the request carries a live session.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	username, loggedIn := h.auth.Check(sessionToken(r))
	writeJSON(w, http.StatusOK, CheckResponse{IsLoggedIn: loggedIn, Username: username})
}

// ChangePassword updates the admin password after re-verifying the current one.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.auth.ChangePassword(r.Context(), sessionToken(r), req.CurrentPassword, req.NewPassword); err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Success: true, Message: "password updated"})
}

// ChangeUsername updates the admin username after re-verifying the password.
// The live session follows the new name.
func (h *Handler) ChangeUsername(w http.ResponseWriter, r *http.Request) {
	var req changeUsernameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.auth.ChangeUsername(r.Context(), sessionToken(r), req.NewUsername, req.Password); err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Success: true, Username: req.NewUsername})
}
