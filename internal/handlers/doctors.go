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

// DoctorManager defines the interface that the doctor service must
// implement.
type DoctorManager interface {
	List(ctx context.Context) ([]models.Doctor, error)
	Create(ctx context.Context, actor *uuid.UUID, name, speciality string) (int64, error)
	Update(ctx context.Context, actor *uuid.UUID, id int64, name, speciality string) error
	Delete(ctx context.Context, actor *uuid.UUID, id int64) error
}

// DoctorsPage carries the doctor list into the template.
type DoctorsPage struct {
	Doctors []models.Doctor
}

func NewDoctorListHandler(svc DoctorManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doctors, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list doctors", "err", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		templates.Render(w, http.StatusOK, "doctors.html", DoctorsPage{Doctors: doctors})
	}
}

func NewDoctorInsertHandler(svc DoctorManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data", http.StatusBadRequest)
			return
		}

		if _, err := svc.Create(r.Context(), actorID(r), r.PostFormValue("name"), r.PostFormValue("speciality")); err != nil {
			logger.Log.Errorw("failed to create doctor", "err", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/menu2", http.StatusSeeOther)
	}
}

func NewDoctorUpdateHandler(svc DoctorManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data", http.StatusBadRequest)
			return
		}
		id, err := formInt64(r, "doctorID")
		if err != nil {
			http.Error(w, "invalid doctor id", http.StatusBadRequest)
			return
		}

		err = svc.Update(r.Context(), actorID(r), id, r.PostFormValue("name"), r.PostFormValue("speciality"))
		if err != nil {
			switch {
			case errors.Is(err, repositories.ErrNotFound):
				http.Error(w, "doctor not found", http.StatusNotFound)
			default:
				logger.Log.Errorw("failed to update doctor", "err", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
			return
		}
		http.Redirect(w, r, "/menu2", http.StatusSeeOther)
	}
}

func NewDoctorDeleteHandler(svc DoctorManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data", http.StatusBadRequest)
			return
		}
		id, err := formInt64(r, "doctorID")
		if err != nil {
			http.Error(w, "invalid doctor id", http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), actorID(r), id); err != nil {
			switch {
			case errors.Is(err, repositories.ErrNotFound):
				http.Error(w, "doctor not found", http.StatusNotFound)
			case errors.Is(err, repositories.ErrReferentialConflict):
				http.Error(w, "doctor has appointments and cannot be deleted", http.StatusConflict)
			default:
				logger.Log.Errorw("failed to delete doctor", "err", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
			return
		}
		http.Redirect(w, r, "/menu2", http.StatusSeeOther)
	}
}
