package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"clinicrecords/internal/logger"
	"clinicrecords/internal/models"
	"clinicrecords/internal/repositories"
	"clinicrecords/internal/templates"
)

// PatientManager defines the interface that the patient service must
// implement.
type PatientManager interface {
	List(ctx context.Context) ([]models.Patient, error)
	Create(ctx context.Context, actor *uuid.UUID, name, contact string) (int64, error)
	Update(ctx context.Context, actor *uuid.UUID, id int64, name, contact string) error
	Delete(ctx context.Context, actor *uuid.UUID, id int64) error
}

// PatientsPage carries the patient list into the template.
type PatientsPage struct {
	Patients []models.Patient
}

func NewPatientListHandler(svc PatientManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patients, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list patients", "err", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		templates.Render(w, http.StatusOK, "patients.html", PatientsPage{Patients: patients})
	}
}

func NewPatientInsertHandler(svc PatientManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data", http.StatusBadRequest)
			return
		}

		if _, err := svc.Create(r.Context(), actorID(r), r.PostFormValue("name"), r.PostFormValue("contact")); err != nil {
			logger.Log.Errorw("failed to create patient", "err", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/menu1", http.StatusSeeOther)
	}
}

func NewPatientUpdateHandler(svc PatientManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data", http.StatusBadRequest)
			return
		}
		id, err := formInt64(r, "patientID")
		if err != nil {
			http.Error(w, "invalid patient id", http.StatusBadRequest)
			return
		}

		err = svc.Update(r.Context(), actorID(r), id, r.PostFormValue("name"), r.PostFormValue("contact"))
		if err != nil {
			switch {
			case errors.Is(err, repositories.ErrNotFound):
				http.Error(w, "patient not found", http.StatusNotFound)
			default:
				logger.Log.Errorw("failed to update patient", "err", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
			return
		}
		http.Redirect(w, r, "/menu1", http.StatusSeeOther)
	}
}

func NewPatientDeleteHandler(svc PatientManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data", http.StatusBadRequest)
			return
		}
		id, err := formInt64(r, "patientID")
		if err != nil {
			http.Error(w, "invalid patient id", http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), actorID(r), id); err != nil {
			switch {
			case errors.Is(err, repositories.ErrNotFound):
				http.Error(w, "patient not found", http.StatusNotFound)
			case errors.Is(err, repositories.ErrReferentialConflict):
				http.Error(w, "patient has appointments and cannot be deleted", http.StatusConflict)
			default:
				logger.Log.Errorw("failed to delete patient", "err", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
			return
		}
		http.Redirect(w, r, "/menu1", http.StatusSeeOther)
	}
}
