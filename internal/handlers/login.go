package handlers

import (
	"context"
	"errors"
	"net/http"

	"clinicrecords/internal/logger"
	"clinicrecords/internal/middlewares"
	"clinicrecords/internal/services"
	"clinicrecords/internal/templates"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginPage carries the login form state into the template.
type LoginPage struct {
	Username string
	Error    string
}

// NewLoginPageHandler renders the login form.
func NewLoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates.Render(w, http.StatusOK, "login.html", LoginPage{})
	}
}

// NewLoginHandler authenticates the submitted credentials. On success it
// sets the session cookie and redirects home; invalid credentials
// re-render the form with an inline error.
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			templates.Render(w, http.StatusBadRequest, "login.html", LoginPage{Error: "invalid form data"})
			return
		}

		username := r.PostFormValue("username")
		password := r.PostFormValue("password")

		token, err := svc.Login(r.Context(), username, password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				templates.Render(w, http.StatusUnauthorized, "login.html", LoginPage{
					Username: username,
					Error:    "Invalid username or password",
				})
			default:
				logger.Log.Errorw("login failed", "err", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middlewares.SessionCookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
