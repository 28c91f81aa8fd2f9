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

// AppointmentManager defines the interface that the appointment service
// must implement.
type AppointmentManager interface {
	List(ctx context.Context) ([]models.AppointmentRow, error)
	Create(ctx context.Context, actor *uuid.UUID, visitDate, visitTime string, doctorID, patientID int64) (int64, error)
	Update(ctx context.Context, actor *uuid.UUID, id int64, visitDate, visitTime string, doctorID, patientID int64) error
	Delete(ctx context.Context, actor *uuid.UUID, id int64) error
}

// AppointmentsPage carries the joined appointment list into the template.
type AppointmentsPage struct {
	Appointments []models.AppointmentRow
}

func NewAppointmentListHandler(svc AppointmentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list appointments", "err", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		templates.Render(w, http.StatusOK, "appointments.html", AppointmentsPage{Appointments: rows})
	}
}

func NewAppointmentInsertHandler(svc AppointmentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data", http.StatusBadRequest)
			return
		}
		doctorID, err := formInt64(r, "doctorID")
		if err != nil {
			http.Error(w, "invalid doctor id", http.StatusBadRequest)
			return
		}
		patientID, err := formInt64(r, "patientID")
		if err != nil {
			http.Error(w, "invalid patient id", http.StatusBadRequest)
			return
		}

		_, err = svc.Create(r.Context(), actorID(r),
			r.PostFormValue("date"), r.PostFormValue("time"), doctorID, patientID)
		if err != nil {
			switch {
			case errors.Is(err, repositories.ErrReferentialConflict):
				http.Error(w, "doctor or patient does not exist", http.StatusConflict)
			default:
				logger.Log.Errorw("failed to create appointment", "err", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
			return
		}
		http.Redirect(w, r, "/menu3", http.StatusSeeOther)
	}
}

func NewAppointmentUpdateHandler(svc AppointmentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data", http.StatusBadRequest)
			return
		}
		id, err := formInt64(r, "appointmentID")
		if err != nil {
			http.Error(w, "invalid appointment id", http.StatusBadRequest)
			return
		}
		doctorID, err := formInt64(r, "doctorID")
		if err != nil {
			http.Error(w, "invalid doctor id", http.StatusBadRequest)
			return
		}
		patientID, err := formInt64(r, "patientID")
		if err != nil {
			http.Error(w, "invalid patient id", http.StatusBadRequest)
			return
		}

		err = svc.Update(r.Context(), actorID(r), id,
			r.PostFormValue("date"), r.PostFormValue("time"), doctorID, patientID)
		if err != nil {
			switch {
			case errors.Is(err, repositories.ErrNotFound):
				http.Error(w, "appointment not found", http.StatusNotFound)
			case errors.Is(err, repositories.ErrReferentialConflict):
				http.Error(w, "doctor or patient does not exist", http.StatusConflict)
			default:
				logger.Log.Errorw("failed to update appointment", "err", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
			return
		}
		http.Redirect(w, r, "/menu3", http.StatusSeeOther)
	}
}

func NewAppointmentDeleteHandler(svc AppointmentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data", http.StatusBadRequest)
			return
		}
		id, err := formInt64(r, "appointmentID")
		if err != nil {
			http.Error(w, "invalid appointment id", http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), actorID(r), id); err != nil {
			switch {
			case errors.Is(err, repositories.ErrNotFound):
				http.Error(w, "appointment not found", http.StatusNotFound)
			default:
				logger.Log.Errorw("failed to delete appointment", "err", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
			return
		}
		http.Redirect(w, r, "/menu3", http.StatusSeeOther)
	}
}
