package httphandler

import "net/http"

// RegisterRoutes registers every API route on mux. Read routes on content
// collections are public; mutations require a live session. The messages
// collection is inverted: the public site submits, only the admin reads.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("GET /api/auth/check", h.Check)
	mux.HandleFunc("POST /api/auth/change-password", h.ChangePassword)
	mux.HandleFunc("POST /api/auth/change-username", h.ChangeUsername)

	mux.HandleFunc("GET /api/portfolio", h.ListPortfolio)
	mux.HandleFunc("GET /api/portfolio/{id}", h.GetPortfolioItem)
	mux.HandleFunc("POST /api/portfolio", h.requireSession(h.CreatePortfolioItem))
	mux.HandleFunc("PUT /api/portfolio/{id}", h.requireSession(h.UpdatePortfolioItem))
	mux.HandleFunc("DELETE /api/portfolio/{id}", h.requireSession(h.DeletePortfolioItem))

	mux.HandleFunc("GET /api/services", h.ListServices)
	mux.HandleFunc("GET /api/services/{id}", h.GetService)
	mux.HandleFunc("POST /api/services", h.requireSession(h.CreateService))
	mux.HandleFunc("PUT /api/services/{id}", h.requireSession(h.UpdateService))
	mux.HandleFunc("DELETE /api/services/{id}", h.requireSession(h.DeleteService))

	mux.HandleFunc("GET /api/skills", h.ListSkills)
	mux.HandleFunc("GET /api/skills/{id}", h.GetSkill)
	mux.HandleFunc("POST /api/skills", h.requireSession(h.CreateSkill))
	mux.HandleFunc("PUT /api/skills/{id}", h.requireSession(h.UpdateSkill))
	mux.HandleFunc("DELETE /api/skills/{id}", h.requireSession(h.DeleteSkill))

	mux.HandleFunc("GET /api/stories", h.ListStories)
	mux.HandleFunc("GET /api/stories/{id}", h.GetStory)
	mux.HandleFunc("POST /api/stories", h.requireSession(h.CreateStory))
	mux.HandleFunc("PUT /api/stories/{id}", h.requireSession(h.UpdateStory))
	mux.HandleFunc("DELETE /api/stories/{id}", h.requireSession(h.DeleteStory))

	mux.HandleFunc("GET /api/messages", h.requireSession(h.ListMessages))
	mux.HandleFunc("POST /api/messages", h.CreateMessage)
	mux.HandleFunc("PUT /api/messages/{id}/read", h.requireSession(h.MarkMessageRead))
	mux.HandleFunc("DELETE /api/messages/{id}", h.requireSession(h.DeleteMessage))

	mux.HandleFunc("GET /api/about", h.GetAbout)
	mux.HandleFunc("PUT /api/about", h.requireSession(h.UpdateAbout))

	mux.HandleFunc("GET /api/settings", h.GetSettings)
	mux.HandleFunc("PUT /api/settings", h.requireSession(h.UpdateSettings))

	mux.HandleFunc("POST /api/restore-defaults", h.requireSession(h.RestoreDefaults))

	// "stats" is a literal segment, so it wins over the {imageKey} wildcard.
	mux.HandleFunc("GET /api/interactions/stats", h.InteractionStats)
	mux.HandleFunc("GET /api/interactions/{imageKey}", h.GetImageInteractions)
	mux.HandleFunc("POST /api/interactions/like", h.LikeImage)
	mux.HandleFunc("POST /api/interactions/comment", h.CommentImage)
}
