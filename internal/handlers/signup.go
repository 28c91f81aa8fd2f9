package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"clinicrecords/internal/logger"
	"clinicrecords/internal/services"
	"clinicrecords/internal/templates"
)

// Registerer defines the interface that the signup service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, role string) (uuid.UUID, error)
}

// SignupPage carries the signup form state into the template.
type SignupPage struct {
	Username string
	Error    string
}

// NewSignupPageHandler renders the signup form.
func NewSignupPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates.Render(w, http.StatusOK, "signup.html", SignupPage{})
	}
}

// NewSignupHandler creates a user from the submitted form. A taken
// username re-renders the form with a distinct error; success redirects
// to the login page.
func NewSignupHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			templates.Render(w, http.StatusBadRequest, "signup.html", SignupPage{Error: "invalid form data"})
			return
		}

		username := r.PostFormValue("username")
		password := r.PostFormValue("password")
		role := r.PostFormValue("role")

		if username == "" || password == "" {
			templates.Render(w, http.StatusBadRequest, "signup.html", SignupPage{
				Username: username,
				Error:    "Username and password are required",
			})
			return
		}

		if _, err := svc.Register(r.Context(), username, password, role); err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameTaken):
				templates.Render(w, http.StatusConflict, "signup.html", SignupPage{
					Username: username,
					Error:    "Username already exists",
				})
			default:
				logger.Log.Errorw("signup failed", "err", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
			return
		}

		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
