package handlers

import (
	"net/http"

	"clinicrecords/internal/middlewares"
	"clinicrecords/internal/templates"
)

// HomePage carries the signed-in identity into the landing template.
type HomePage struct {
	Username string
	Role     string
}

// NewHomeHandler renders the landing page with the session's identity.
func NewHomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := middlewares.GetSessionFromContext(r.Context())
		if sess == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		templates.Render(w, http.StatusOK, "index.html", HomePage{
			Username: sess.Username,
			Role:     sess.Role,
		})
	}
}
